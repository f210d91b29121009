package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelCrop},
	)

	BeesHatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBeesHatched,
			Help: HelpTextBeesHatched,
		},
	)

	HivesFull = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHivesFull,
			Help: HelpTextHivesFull,
		},
	)

	HoneyBatchesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoneyBatchesCompleted,
			Help: HelpTextHoneyBatchesCompleted,
		},
	)

	HoneyJarsBottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoneyJarsBottled,
			Help: HelpTextHoneyJarsBottled,
		},
	)

	HoneyOrdersFulfilled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHoneyOrdersFulfilled,
			Help: HelpTextHoneyOrdersFulfilled,
		},
		[]string{LabelHoney},
	)

	NectarBottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNectarBottled,
			Help: HelpTextNectarBottled,
		},
	)

	OrdersGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersGenerated,
			Help: HelpTextOrdersGenerated,
		},
		[]string{LabelType},
	)

	OrdersFulfilled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersFulfilled,
			Help: HelpTextOrdersFulfilled,
		},
		[]string{LabelType, LabelMerchant},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	PollinatorQuality = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePollinatorQuality,
			Help: HelpTextPollinatorQuality,
		},
	)

	PollinatorFactor = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePollinatorFactor,
			Help: HelpTextPollinatorFactor,
		},
		[]string{LabelFactor},
	)
)

// Security Metrics
var (
	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelKind},
	)
)

// Scheduler Metrics
var (
	TaskRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTaskRuns,
			Help: HelpTextTaskRuns,
		},
		[]string{LabelTask, LabelOutcome},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameTaskDuration,
			Help:    HelpTextTaskDuration,
			Buckets: TaskLatencyBuckets,
		},
		[]string{LabelTask},
	)
)

// RecordPollinatorQuality publishes the latest score and its factors as gauges
func RecordPollinatorQuality(q domain.PollinatorQuality) {
	PollinatorQuality.Set(q.Overall)
	PollinatorFactor.WithLabelValues("weather").Set(q.Factors.Weather)
	PollinatorFactor.WithLabelValues("population").Set(q.Factors.Population)
	PollinatorFactor.WithLabelValues("health").Set(q.Factors.Health)
	PollinatorFactor.WithLabelValues("resources").Set(q.Factors.Resources)
	PollinatorFactor.WithLabelValues("seasonality").Set(q.Factors.Seasonality)
}
