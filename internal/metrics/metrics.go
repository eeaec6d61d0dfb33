package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChangeRecordsWrittenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_change_records_written_total",
		Help: "Total number of change records appended, by entity kind.",
	},
		[]string{"entity_kind"},
	)

	ChangeRecordWriteFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_change_record_write_failures_total",
		Help: "Total number of change-record writes that failed and were absorbed.",
	},
		[]string{"entity_kind"},
	)

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_orders_created_total",
		Help: "Total number of cargo orders successfully created.",
	})

	DispatchesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_dispatches_completed_total",
		Help: "Total number of orders that got a driver assigned.",
	})

	SmsTasksEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_sms_tasks_enqueued_total",
		Help: "Total number of SMS notification tasks written to the outbox.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
