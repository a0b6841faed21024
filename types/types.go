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

// Package types defines the core data model shared by a RETE discrimination
// network: facts, binding contexts, tokens, matchers, activations, and the
// engine-wide configuration and error contracts every other package in this
// module builds on.
//
// The package deliberately says nothing about how a rule chain is compiled
// into a network of nodes — that boundary belongs to a compiler built on top
// of this module, not to the module itself. What it does define is the value
// types that flow across that boundary: a Fact is whatever the working
// memory hands the network, a Context is the binding environment a Matcher
// extends, and a Token is the immutable unit that nodes exchange to
// incrementally keep the conflict set correct under addition and retraction.
package types

// Configuration is a generic key-value map used to parameterize matcher
// builders (see the matcher package) from a DSL-like source without this
// module taking a dependency on any particular DSL format.
type Configuration map[string]any

// Copy creates a shallow copy of the Configuration.
func (c Configuration) Copy() Configuration {
	if c == nil {
		return nil
	}
	cp := make(Configuration, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp
}
