/*
 * Copyright 2023 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// Config carries the cross-cutting settings a Network is built with:
// logging, global properties available to matcher builders, and whether
// Prometheus metrics are recorded. It follows the teacher's functional
// options pattern.
//
// Usage:
//
//	config := types.NewConfig(
//	    types.WithLogger(myLogger),
//	    types.WithMetricsEnabled(false),
//	)
//	net := engine.NewNetwork(config)
type Config struct {
	// Logger is the logging interface, defaulting to DefaultLogger().
	Logger Logger
	// Properties are global key-value settings exposed to matcher builders,
	// analogous to the teacher's Config.Properties.
	Properties Configuration
	// MetricsEnabled controls whether the network records Prometheus
	// metrics for fact events and activation-set sizes. Defaults to true.
	MetricsEnabled bool
}

// NewConfig creates a new Config with default values and applies the
// provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		Logger:         DefaultLogger(),
		Properties:     Configuration{},
		MetricsEnabled: true,
	}

	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
