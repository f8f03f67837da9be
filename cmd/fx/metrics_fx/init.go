package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"soberup/pkg/metrics"
)

var Module = fx.Provide(
	provideRegistry,
	provideCollectors)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideCollectors(reg *prometheus.Registry) *metrics.Collectors {
	return metrics.New(reg)
}
