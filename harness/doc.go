// Package harness implements the evolutionary generational loop: parent
// selection, mutation via package mutate, evaluation of every root via
// package eval, demotion of non-elite roots, a verify.Verify cleanup pass
// between generations, and a concurrent cache-warmup phase.
//
// Configuration is YAML-shaped (gopkg.in/yaml.v3, following
// ahrav/go-gavel's application config layer) and validated with
// go-playground/validator/v10. Metrics are exposed as Prometheus
// counters/gauges/histograms (github.com/prometheus/client_golang), the way
// go-gavel's infrastructure/middleware package wires its own.
package harness
