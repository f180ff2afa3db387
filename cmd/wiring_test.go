package main

import (
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
	settingsRepo "github.com/xsalon/scheduling-service/internal/infra/storage/settings"
	accountsClient "github.com/xsalon/scheduling-service/internal/integrations/accounts"
	paymentClient "github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
	appointmentsService "github.com/xsalon/scheduling-service/internal/service/appointments"
	queueService "github.com/xsalon/scheduling-service/internal/service/queue"
	cancelAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/cancel_appointment"
	checkInUC "github.com/xsalon/scheduling-service/internal/usecase/check_in"
	confirmPaymentUC "github.com/xsalon/scheduling-service/internal/usecase/confirm_payment"
	createAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/xsalon/scheduling-service/internal/usecase/get_available_slots"
	initializePaymentUC "github.com/xsalon/scheduling-service/internal/usecase/initialize_payment"
	rescheduleAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/reschedule_appointment"
	updateStatusUC "github.com/xsalon/scheduling-service/internal/usecase/update_status"
	"github.com/xsalon/scheduling-service/internal/worker/sweeper"
	"github.com/xsalon/scheduling-service/pkg/simpletxmanager"
	"github.com/xsalon/scheduling-service/pkg/txmanager"
)

// Compile-time checks that every concrete collaborator satisfies the
// contracts main wires it into.
var (
	_ getAvailableSlotsUC.AppointmentRepository     = (*appointmentRepo.Repository)(nil)
	_ createAppointmentUC.AppointmentRepository     = (*appointmentRepo.Repository)(nil)
	_ initializePaymentUC.AppointmentRepository     = (*appointmentRepo.Repository)(nil)
	_ confirmPaymentUC.AppointmentRepository        = (*appointmentRepo.Repository)(nil)
	_ checkInUC.AppointmentRepository               = (*appointmentRepo.Repository)(nil)
	_ updateStatusUC.AppointmentRepository          = (*appointmentRepo.Repository)(nil)
	_ cancelAppointmentUC.AppointmentRepository     = (*appointmentRepo.Repository)(nil)
	_ rescheduleAppointmentUC.AppointmentRepository = (*appointmentRepo.Repository)(nil)
	_ queueService.AppointmentRepository            = (*appointmentRepo.Repository)(nil)
	_ appointmentsService.AppointmentRepository     = (*appointmentRepo.Repository)(nil)
	_ sweeper.AppointmentRepository                 = (*appointmentRepo.Repository)(nil)

	_ getAvailableSlotsUC.CalendarRepository     = (*calendarRepo.Repository)(nil)
	_ createAppointmentUC.CalendarRepository     = (*calendarRepo.Repository)(nil)
	_ rescheduleAppointmentUC.CalendarRepository = (*calendarRepo.Repository)(nil)

	_ getAvailableSlotsUC.ServiceCatalogRepository = (*servicecatalogRepo.Repository)(nil)
	_ createAppointmentUC.ServiceCatalogRepository = (*servicecatalogRepo.Repository)(nil)

	_ createAppointmentUC.SettingsRepository = (*settingsRepo.Repository)(nil)

	_ createAppointmentUC.AccountsClient = (*accountsClient.Client)(nil)
	_ initializePaymentUC.AccountsClient = (*accountsClient.Client)(nil)

	_ initializePaymentUC.PaymentProviderClient = (*paymentClient.Client)(nil)
	_ confirmPaymentUC.PaymentProviderClient    = (*paymentClient.Client)(nil)

	_ confirmPaymentUC.QueueAssigner            = (*queueService.Service)(nil)
	_ checkInUC.QueueAssigner                   = (*queueService.Service)(nil)
	_ updateStatusUC.QueueRecalculator          = (*queueService.Service)(nil)
	_ cancelAppointmentUC.QueueRecalculator     = (*queueService.Service)(nil)
	_ rescheduleAppointmentUC.QueueRecalculator = (*queueService.Service)(nil)
)

// Both transaction managers must cover every consumer-side contract.
type allTxContracts interface {
	queueService.TransactionManager
	createAppointmentUC.TransactionManager
	initializePaymentUC.TransactionManager
	confirmPaymentUC.TransactionManager
	checkInUC.TransactionManager
	updateStatusUC.TransactionManager
	cancelAppointmentUC.TransactionManager
	rescheduleAppointmentUC.TransactionManager
}

var (
	_ allTxContracts = (*txmanager.TransactionManager)(nil)
	_ allTxContracts = (*simpletxmanager.TransactionManager)(nil)
)
