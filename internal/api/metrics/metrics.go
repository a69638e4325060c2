// Package metrics defines and registers all custom Prometheus metrics for
// the course-selling API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courseify"

// SignupsTotal counts successful account creations.
// Label:
//   - role: "admin" or "user"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "user"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// CoursesCreatedTotal counts newly created courses.
// Label:
//   - published: "true" or "false" at creation time
var CoursesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created, by initial published flag.",
	},
	[]string{"published"},
)

// PurchasesTotal counts purchase attempts.
// Label:
//   - result: "success", "course_not_found", or "user_not_found"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of course purchase attempts, by result.",
	},
	[]string{"result"},
)
