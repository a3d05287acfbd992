package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tschuyebuhl/wordfreq/data"
)

// runMetrics holds the gauges of a single run in their own registry.
type runMetrics struct {
	registry      *prometheus.Registry
	wordFrequency *prometheus.GaugeVec
	tokens        prometheus.Gauge
	distinctWords prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &runMetrics{
		registry: reg,
		wordFrequency: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wordfreq_word_count",
				Help: "The frequency of each word in the analyzed file",
			},
			[]string{"file", "word"},
		),
		tokens: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wordfreq_tokens",
			Help: "Number of words counted after stop words were removed",
		}),
		distinctWords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wordfreq_distinct_words",
			Help: "Number of distinct words in the frequency table",
		}),
	}
}

func (m *runMetrics) Update(file string, tokens int, wordCounts data.FrequencyTable) {
	for word, count := range wordCounts {
		m.wordFrequency.WithLabelValues(file, word).Set(float64(count))
	}
	m.tokens.Set(float64(tokens))
	m.distinctWords.Set(float64(len(wordCounts)))
}

// WriteTextfile writes the metrics in the text exposition format, for the node exporter textfile collector.
func (m *runMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Serve exposes /metrics on addr until ctx is done.
func (m *runMetrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("serving metrics", "addr", addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
