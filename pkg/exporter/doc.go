// Copyright (c) 2025, The vcgen Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package exporter exposes live firmware readings as Prometheus metrics.
//
// The Collector queries the device on every scrape rather than caching, so
// each scrape reflects the current temperature, clocks, voltages, memory
// split and throttle state. Readings are taken one after another under a
// mutex; concurrent scrapes wait for each other so that at most one tool
// process is running.
//
// A reading that fails is logged and left out of the scrape. The
// vcgen_scrape_success gauge is 0 whenever any reading failed.
//
// # Usage
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(exporter.New(cmd))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # Metrics
//
//	vcgen_soc_temperature_celsius
//	vcgen_clock_frequency_hertz{clock}
//	vcgen_voltage_volts{rail}
//	vcgen_memory_split_bytes{region}
//	vcgen_throttled{bit,flag}
//	vcgen_scrape_success
//	vcgen_scrape_duration_seconds
package exporter
