package metrics

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

type Store struct {
	Prometheus        *prometheus.Registry
	BuildInfo         prometheus.Counter
	RpcCalls          *prometheus.CounterVec
	RpcDuration       *prometheus.HistogramVec
	Dispatches        *prometheus.CounterVec
	ProviderConnected *prometheus.GaugeVec
	EmittedEvents     *prometheus.CounterVec
}

const Status = `status`
const Method = `method`
const Network = `network`
const Event = `event`

const StatusOk = `Ok`
const StatusFail = `Fail`

var Commit string

func New(promRegistry *prometheus.Registry, prefix, appName, env string) *Store {
	store := &Store{
		Prometheus: promRegistry,
		BuildInfo: prometheus.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_metric_build_info", prefix),
			Help: "Build information",
			ConstLabels: prometheus.Labels{
				"name":    appName,
				"env":     env,
				"commit":  Commit,
				"version": runtime.Version(),
			},
		}),
		RpcCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_rpc_calls_total", prefix),
			Help: "The total number of JSON-RPC calls",
		}, []string{Method, Status}),
		RpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_rpc_call_seconds", prefix),
			Help:    "Time spent waiting for JSON-RPC responses",
			Buckets: prometheus.DefBuckets,
		}, []string{Method}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_provider_dispatch_total", prefix),
			Help: "The total number of provider requests dispatched to the host",
		}, []string{Network, Method, Status}),
		ProviderConnected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_provider_connected", prefix),
			Help: "1 when the provider holds discovered accounts",
		}, []string{Network}),
		EmittedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_provider_events_total", prefix),
			Help: "The total number of provider notifications emitted",
		}, []string{Network, Event}),
	}

	store.Prometheus.MustRegister(
		store.BuildInfo,
		store.RpcCalls,
		store.RpcDuration,
		store.Dispatches,
		store.ProviderConnected,
		store.EmittedEvents,
	)

	return store
}
