package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addStaffHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/add_staff"
	changeStatusHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/change_availability_status"
	createAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_availability"
	deleteAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_availability"
	getAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_slots"
	getDayRosterHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_roster"
	getRosterHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_roster"
	listAppointmentsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_appointments"
	listAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_availability"
	removeStaffHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/remove_staff"
	submitBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignment"
	availabilityService "github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	rosterService "github.com/m04kA/SMC-ScheduleService/internal/service/roster"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	submitBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// employeeDirectory справочник сотрудников и клиентов (UserService)
type employeeDirectory interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// scheduling настройки слотов и горизонта
type scheduling struct {
	slots          []types.TimeString
	horizonDays    int
	maxHorizonDays int
}

// app сервисы и use cases, собранные поверх хранилища
type app struct {
	availability  *availabilityService.Service
	roster        *rosterService.Service
	appointments  *appointmentsService.Service
	submitBooking *submitBookingUC.UseCase
	slots         *getAvailableSlotsUC.UseCase
}

func newApp(
	store *storage,
	directory employeeDirectory,
	notifier submitBookingUC.Notifier,
	m *metrics.Metrics,
	settings scheduling,
	log *logger.Logger,
) *app {
	availabilitySvc := availabilityService.NewService(store.availability, directory, log)
	resolver := assignment.NewResolver(assignment.GlobalRandomSource{}, log)

	return &app{
		availability: availabilitySvc,
		roster:       rosterService.NewService(store.availability, availabilitySvc, directory, m, log),
		appointments: appointmentsService.NewService(store.appointments, log),
		submitBooking: submitBookingUC.NewUseCase(
			store.appointments,
			directory,
			resolver,
			notifier,
			m,
			submitBookingUC.Settings{Slots: settings.slots, HorizonDays: settings.horizonDays},
			log,
		),
		slots: getAvailableSlotsUC.NewUseCase(
			store.appointments,
			directory,
			getAvailableSlotsUC.Settings{
				Slots:          settings.slots,
				HorizonDays:    settings.horizonDays,
				MaxHorizonDays: settings.maxHorizonDays,
			},
			log,
		),
	}
}

// newRouter настраивает маршруты /api/v1. metricsPath пустой, если метрики выключены.
func newRouter(a *app, m *metrics.Metrics, metricsPath string, log *logger.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
		r.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", metricsPath)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на горизонт
	api.HandleFunc("/available-slots",
		getAvailableSlotsHandler.NewHandler(a.slots, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиентов ---
	protected.HandleFunc("/appointments",
		submitBookingHandler.NewHandler(a.submitBooking, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments",
		listAppointmentsHandler.NewHandler(a.appointments, log).Handle).Methods(http.MethodGet)

	// --- Доступность сотрудников ---
	protected.HandleFunc("/availability",
		createAvailabilityHandler.NewHandler(a.availability, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability",
		listAvailabilityHandler.NewHandler(a.availability, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability/{availabilityId}",
		getAvailabilityHandler.NewHandler(a.availability, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	admin.HandleFunc("/availability/{availabilityId}/status",
		changeStatusHandler.NewHandler(a.availability, log).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/availability/{availabilityId}",
		deleteAvailabilityHandler.NewHandler(a.availability, log).Handle).Methods(http.MethodDelete)

	// --- Недельное расписание ---
	admin.HandleFunc("/roster",
		getRosterHandler.NewHandler(a.roster, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/roster/{date}",
		getDayRosterHandler.NewHandler(a.roster, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/roster/{date}/staff",
		addStaffHandler.NewHandler(a.roster, log).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/roster/{date}/staff/{employeeId}",
		removeStaffHandler.NewHandler(a.roster, log).Handle).Methods(http.MethodDelete)

	return r
}
