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
	"sort"
	"strconv"
	"strings"
	"sync"

	metrics "github.com/rcrowley/go-metrics"
)

// registries groups go-metrics registries by metrics type
type registry struct {
	registries map[string]metrics.Registry
	mutex      sync.RWMutex
}

var reg *registry

func init() {
	reg = &registry{
		registries: make(map[string]metrics.Registry),
	}
}

// Stats wraps a go-metrics registry, every metrics key is
// "${type}@${namespace}@${key}".
type Stats struct {
	typ       string
	namespace string
	registry  metrics.Registry
}

// "@" is reserved as the key separator and dropped from type and namespace
const sep = "@"

// NewStats returns the Stats of typ and namespace.
func NewStats(typ, namespace string) *Stats {
	typ = strings.Replace(typ, sep, "", -1)
	namespace = strings.Replace(namespace, sep, "", -1)
	reg.mutex.Lock()
	defer reg.mutex.Unlock()
	r, ok := reg.registries[typ]
	if !ok {
		r = metrics.NewRegistry()
		reg.registries[typ] = r
	}
	return &Stats{
		typ:       typ,
		namespace: namespace,
		registry:  r,
	}
}

func (s *Stats) key(key string) string {
	return strings.Join([]string{s.typ, s.namespace, key}, sep)
}

// Counter creates or returns the counter of key.
func (s *Stats) Counter(key string) metrics.Counter {
	return s.registry.GetOrRegister(s.key(key), metrics.NewCounter).(metrics.Counter)
}

// Gauge creates or returns the gauge of key.
func (s *Stats) Gauge(key string) metrics.Gauge {
	return s.registry.GetOrRegister(s.key(key), metrics.NewGauge).(metrics.Gauge)
}

// Histogram creates or returns the histogram of key.
func (s *Stats) Histogram(key string) metrics.Histogram {
	return s.registry.GetOrRegister(s.key(key), func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewUniformSample(100))
	}).(metrics.Histogram)
}

// ListTypes returns the registered types, sorted.
func ListTypes() []string {
	reg.mutex.RLock()
	ts := make([]string, 0, len(reg.registries))
	for typ := range reg.registries {
		ts = append(ts, typ)
	}
	reg.mutex.RUnlock()
	sort.Strings(ts)
	return ts
}

// histogram output percents
var percents = []float64{0.5, 0.95, 0.99}

// NamespaceData is the metrics of a namespace, formatted as strings
type NamespaceData map[string]string

// GetMetricsData returns the metrics of typ, by namespace.
func GetMetricsData(typ string) map[string]NamespaceData {
	reg.mutex.RLock()
	r, ok := reg.registries[typ]
	reg.mutex.RUnlock()
	if !ok {
		return nil
	}
	res := make(map[string]NamespaceData)
	r.Each(func(key string, i interface{}) {
		values := strings.SplitN(key, sep, 3)
		if len(values) != 3 {
			return
		}
		namespace, metricsKey := values[1], values[2]
		data, ok := res[namespace]
		if !ok {
			data = NamespaceData{}
			res[namespace] = data
		}
		switch metric := i.(type) {
		case metrics.Counter:
			data[metricsKey] = strconv.FormatInt(metric.Count(), 10)
		case metrics.Gauge:
			data[metricsKey] = strconv.FormatInt(metric.Value(), 10)
		case metrics.Histogram:
			h := metric.Snapshot()
			ps := h.Percentiles(percents)
			for i, p := range percents {
				data[metricsKey+".p"+strconv.FormatFloat(p*100, 'f', -1, 64)] = strconv.FormatFloat(ps[i], 'f', 2, 64)
			}
			data[metricsKey+".count"] = strconv.FormatInt(h.Count(), 10)
			data[metricsKey+".max"] = strconv.FormatInt(h.Max(), 10)
		}
	})
	return res
}
