package picker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for a gallery picker.
type Metrics struct {
	// FilesAccepted counts files that passed validation and entered the
	// gallery.
	FilesAccepted prometheus.Counter

	// FilesRejected counts rejected files, labeled by rejection reason.
	FilesRejected *prometheus.CounterVec

	// PreviewsActive tracks currently outstanding preview handles.
	PreviewsActive prometheus.Gauge

	// PreviewsReleased counts released preview handles.
	PreviewsReleased prometheus.Counter
}

// NewMetrics creates and registers the picker collectors with reg.
// Pass nil to use the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		FilesAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "galleria",
			Name:      "files_accepted_total",
			Help:      "Files that passed validation and entered the gallery.",
		}),
		FilesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "galleria",
			Name:      "files_rejected_total",
			Help:      "Files rejected during Add, by reason.",
		}, []string{"reason"}),
		PreviewsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "galleria",
			Name:      "previews_active",
			Help:      "Preview handles currently outstanding.",
		}),
		PreviewsReleased: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "galleria",
			Name:      "previews_released_total",
			Help:      "Preview handles released over the process lifetime.",
		}),
	}
}
