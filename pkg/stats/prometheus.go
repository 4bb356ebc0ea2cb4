/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stats

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	metrics "github.com/rcrowley/go-metrics"
)

const (
	promNamespace = "headermap"
	promLabel     = "namespace"
)

// PromSink exports the stats as prometheus gauges, labeled by namespace.
type PromSink struct {
	registry  *prometheus.Registry
	mutex     sync.Mutex
	gaugeVecs map[string]*prometheus.GaugeVec
}

// NewPromSink returns a sink with its own prometheus registry.
func NewPromSink() *PromSink {
	return &PromSink{
		registry:  prometheus.NewRegistry(),
		gaugeVecs: make(map[string]*prometheus.GaugeVec),
	}
}

// Flush copies the current value of every metrics into the gauges.
func (sink *PromSink) Flush() {
	reg.mutex.RLock()
	registries := make(map[string]metrics.Registry, len(reg.registries))
	for typ, r := range reg.registries {
		registries[typ] = r
	}
	reg.mutex.RUnlock()

	sink.mutex.Lock()
	defer sink.mutex.Unlock()
	for typ, r := range registries {
		r.Each(func(key string, i interface{}) {
			values := strings.SplitN(key, sep, 3)
			if len(values) != 3 {
				return
			}
			namespace, name := values[1], values[2]
			switch metric := i.(type) {
			case metrics.Counter:
				sink.set(typ, name, namespace, float64(metric.Count()))
			case metrics.Gauge:
				sink.set(typ, name, namespace, float64(metric.Value()))
			case metrics.Histogram:
				snap := metric.Snapshot()
				sink.set(typ, name+"_max", namespace, float64(snap.Max()))
				sink.set(typ, name+"_min", namespace, float64(snap.Min()))
				sink.set(typ, name+"_count", namespace, float64(snap.Count()))
			}
		})
	}
}

func (sink *PromSink) set(typ, name, namespace string, value float64) {
	key := typ + "_" + name
	g, ok := sink.gaugeVecs[key]
	if !ok {
		g = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: promNamespace,
			Subsystem: flattenKey(typ),
			Name:      flattenKey(name),
		}, []string{promLabel})
		sink.registry.MustRegister(g)
		sink.gaugeVecs[key] = g
	}
	g.WithLabelValues(namespace).Set(value)
}

// Write flushes the stats and writes them to w in the prometheus text format.
func (sink *PromSink) Write(w io.Writer) error {
	sink.Flush()
	mfs, err := sink.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// Handler returns an http handler that flushes the stats on every scrape.
func (sink *PromSink) Handler() http.Handler {
	exporter := promhttp.HandlerFor(sink.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(rsp http.ResponseWriter, req *http.Request) {
		sink.Flush()
		exporter.ServeHTTP(rsp, req)
	})
}

func flattenKey(key string) string {
	key = strings.Replace(key, " ", "_", -1)
	key = strings.Replace(key, ".", "_", -1)
	key = strings.Replace(key, "-", "_", -1)
	key = strings.Replace(key, "=", "_", -1)
	return key
}
