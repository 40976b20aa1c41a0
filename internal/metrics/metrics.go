package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UserCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_user_created_total",
		Help: "Total number of users created.",
	})
	CategoryCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_category_created_total",
		Help: "Total number of categories created.",
	})
	BlogCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_blog_created_total",
		Help: "Total number of blogs created.",
	})
	EntityMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_entity_mutations_total",
		Help: "Total number of successful updates and deletes.",
	}, []string{"entity", "op"}) // op: "update" or "delete"

	// TotalUsers is refreshed on every user listing and adjusted on create/delete.
	TotalUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_total_users",
		Help: "Total number of registered users in the application.",
	})
)
