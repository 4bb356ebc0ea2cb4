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
	"sync"
	"testing"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClear cleans the registry for test
func testClear() {
	reg = &registry{
		registries: make(map[string]metrics.Registry),
	}
}

func TestTrimKey(t *testing.T) {
	testClear()
	s := NewStats("test@type", "test@namespace")
	assert.Equal(t, "testtype", s.typ)
	assert.Equal(t, "testnamespace", s.namespace)
}

func TestMetricsData(t *testing.T) {
	testClear()
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := NewStats("t1", "ns1")
			s.Counter("k1").Inc(1)
			s.Gauge("k2").Update(5)
			s.Histogram("k3").Update(10)
		}()
	}
	wg.Wait()
	NewStats("t2", "ns1").Counter("k1").Inc(2)

	assert.Equal(t, []string{"t1", "t2"}, ListTypes())
	data := GetMetricsData("t1")
	require.Contains(t, data, "ns1")
	assert.Equal(t, "10", data["ns1"]["k1"])
	assert.Equal(t, "5", data["ns1"]["k2"])
	assert.Equal(t, "10", data["ns1"]["k3.count"])
	assert.Equal(t, "10", data["ns1"]["k3.max"])
	assert.Equal(t, "10.00", data["ns1"]["k3.p50"])
	assert.Equal(t, "2", GetMetricsData("t2")["ns1"]["k1"])
	assert.Nil(t, GetMetricsData("none"))
}

func TestHeaderStats(t *testing.T) {
	testClear()
	s := NewHeaderStats("Http1")
	s.DecodeTotal.Inc(1)
	s.DecodeBytes.Update(120)
	s.Overflow.Inc(1)
	// the same metrics are shared by protocol
	NewHeaderStats("Http1").Stripped.Inc(3)

	data := GetMetricsData(HeaderType)["Http1"]
	assert.Equal(t, "1", data[HeaderDecodeTotal])
	assert.Equal(t, "1", data[HeaderOverflow])
	assert.Equal(t, "3", data[HeaderStripped])
	assert.Equal(t, "1", data[HeaderDecodeBytes+".count"])
}
