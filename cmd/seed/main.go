package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"

	"github.com/m04kA/PWS-ScheduleService/internal/config"
	"github.com/m04kA/PWS-ScheduleService/internal/domain"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
	"github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
)

// Наполняет базу демонстрационными данными: настройки по умолчанию,
// ожидающие заявки на будущие дни, подтверждённые записи в прошлом и
// будущем, пара отменённых встреч и несколько заблокированных слотов.

const (
	pendingRequests     = 8
	futureAppointments  = 6
	pastAppointments    = 12
	cancelledRecords    = 3
	blockedSlots        = 4
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	store := docstore.NewPostgres(db, cfg.Database.DSN(), nil, stdLogger{})

	gofakeit.Seed(time.Now().UnixNano())

	settings := domain.DefaultSettings()
	if err := store.Merge(ctx, schedule.CollectionSettings, schedule.SettingsDocID, settings); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	log.Println("settings seeded")

	grid := domain.GenerateSlotGrid(settings.StartHour, settings.EndHour, settings.SlotDurationMinutes)
	now := time.Now()

	if err := seedPending(ctx, store, grid, now); err != nil {
		log.Fatalf("seed pending requests: %v", err)
	}
	if err := seedAppointments(ctx, store, grid, now); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}
	if err := seedCancelled(ctx, store, grid, now); err != nil {
		log.Fatalf("seed cancelled: %v", err)
	}
	if err := seedBlocked(ctx, store, grid, now); err != nil {
		log.Fatalf("seed blocked slots: %v", err)
	}

	log.Println("seed complete")
}

func seedPending(ctx context.Context, store docstore.Store, grid []domain.GridSlot, now time.Time) error {
	log.Printf("seeding %d pending requests", pendingRequests)

	for i := 0; i < pendingRequests; i++ {
		day := now.AddDate(0, 0, gofakeit.Number(1, 14))
		slot := grid[gofakeit.Number(0, len(grid)-1)]

		req := fakeRequest(day, slot.Code, now)

		id, err := store.Create(ctx, schedule.CollectionRequests, req)
		if err != nil {
			return err
		}

		req.ID = id
		if err := mergeSlot(ctx, store, req.Date, slot.Code, domain.SlotPending, &req); err != nil {
			return err
		}
	}

	log.Println("pending requests seeded")
	return nil
}

func seedAppointments(ctx context.Context, store docstore.Store, grid []domain.GridSlot, now time.Time) error {
	log.Printf("seeding %d future and %d past appointments", futureAppointments, pastAppointments)

	for i := 0; i < futureAppointments+pastAppointments; i++ {
		offset := gofakeit.Number(0, 14)
		if i >= futureAppointments {
			offset = -gofakeit.Number(1, 60)
		}
		day := now.AddDate(0, 0, offset)
		slot := grid[gofakeit.Number(0, len(grid)-1)]

		req := fakeRequest(day, slot.Code, now.AddDate(0, 0, -gofakeit.Number(1, 7)))
		req.Status = domain.AppointmentStatusApproved

		apt := domain.Appointment{Request: req, ApprovedAt: req.CreatedAt.Add(time.Hour)}

		id, err := store.Create(ctx, schedule.CollectionAppointments, apt)
		if err != nil {
			return err
		}

		apt.ID = id
		if err := mergeSlot(ctx, store, apt.Date, slot.Code, domain.SlotBooked, &apt.Request); err != nil {
			return err
		}
	}

	log.Println("appointments seeded")
	return nil
}

func seedCancelled(ctx context.Context, store docstore.Store, grid []domain.GridSlot, now time.Time) error {
	log.Printf("seeding %d cancelled appointments", cancelledRecords)

	for i := 0; i < cancelledRecords; i++ {
		day := now.AddDate(0, 0, -gofakeit.Number(1, 30))
		slot := grid[gofakeit.Number(0, len(grid)-1)]

		req := fakeRequest(day, slot.Code, now.AddDate(0, 0, -gofakeit.Number(31, 45)))
		req.Status = domain.AppointmentStatusCancelled

		record := domain.CancelledAppointment{
			Appointment: domain.Appointment{Request: req, ApprovedAt: req.CreatedAt.Add(time.Hour)},
			CancelNote:  gofakeit.Sentence(6),
			CancelledAt: req.CreatedAt.AddDate(0, 0, 2),
		}

		if _, err := store.Create(ctx, schedule.CollectionCancelled, record); err != nil {
			return err
		}
	}

	log.Println("cancelled appointments seeded")
	return nil
}

func seedBlocked(ctx context.Context, store docstore.Store, grid []domain.GridSlot, now time.Time) error {
	log.Printf("seeding %d blocked slots", blockedSlots)

	for i := 0; i < blockedSlots; i++ {
		day := now.AddDate(0, 0, gofakeit.Number(1, 14))
		slot := grid[gofakeit.Number(0, len(grid)-1)]

		dateKey := domain.FormatDateKey(day)
		if err := mergeSlot(ctx, store, dateKey, slot.Code, domain.SlotBlocked, nil); err != nil {
			return err
		}
	}

	log.Println("blocked slots seeded")
	return nil
}

func fakeRequest(day time.Time, code domain.SlotCode, createdAt time.Time) domain.Request {
	return domain.Request{
		Date:           domain.FormatDateKey(day),
		Slot:           code,
		RequesterName:  gofakeit.Name(),
		RequesterEmail: gofakeit.Email(),
		RequesterPhone: gofakeit.Phone(),
		Description:    gofakeit.Sentence(10),
		Status:         domain.RequestStatusPending,
		CreatedAt:      createdAt,
	}
}

func mergeSlot(ctx context.Context, store docstore.Store, dateKey string, code domain.SlotCode, status domain.SlotStatus, req *domain.Request) error {
	partial := map[string]domain.SlotOverride{
		code.String(): {Status: status, Request: req},
	}
	return store.Merge(ctx, schedule.CollectionSlots, dateKey, partial)
}

// stdLogger адаптер стандартного лога под контракт docstore
type stdLogger struct{}

func (stdLogger) Info(format string, v ...interface{})  { log.Printf("INFO: "+format, v...) }
func (stdLogger) Warn(format string, v ...interface{})  { log.Printf("WARN: "+format, v...) }
func (stdLogger) Error(format string, v ...interface{}) { log.Printf("ERROR: "+format, v...) }
