/*
 * Copyright 2024 The RuleGo Authors.
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

// Option is a function type that modifies the Config, following the same
// functional-options pattern the teacher uses for its own Config.
type Option func(*Config) error

// WithLogger sets the logger of the Config.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithProperties sets the global properties of the Config.
func WithProperties(properties Configuration) Option {
	return func(c *Config) error {
		c.Properties = properties
		return nil
	}
}

// WithMetricsEnabled toggles Prometheus metrics recording on the Network
// built from this Config.
func WithMetricsEnabled(enabled bool) Option {
	return func(c *Config) error {
		c.MetricsEnabled = enabled
		return nil
	}
}
