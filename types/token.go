package types

import (
	"fmt"
	"sort"
	"strings"
)

// Tag marks whether a Token is asserting or retracting the combination of
// facts and bindings it carries.
type Tag int

const (
	// Invalid denotes a retraction flowing through the network.
	Invalid Tag = iota
	// Valid denotes an assertion flowing through the network.
	Valid
)

func (t Tag) String() string {
	if t == Valid {
		return "VALID"
	}
	return "INVALID"
}

// Token is the immutable propagation unit exchanged between nodes. Producing
// a new token always creates a new value — data and context are never
// mutated in place once a token has been handed to a child.
type Token struct {
	tag     Tag
	data    []Fact
	context Context
}

// NewToken builds a token with an explicit tag, fact set and context. data
// is treated as a set: duplicate facts (by ==) are folded into one entry.
func NewToken(tag Tag, data []Fact, context Context) Token {
	return Token{tag: tag, data: dedupeFacts(data), context: context}
}

// ValidFact returns a VALID token carrying exactly one fact and an empty
// context, the shape the Bus produces for an assertion.
func ValidFact(fact Fact) Token {
	return Token{tag: Valid, data: []Fact{fact}, context: Context{}}
}

// InvalidFact returns an INVALID token carrying exactly one fact and an
// empty context, the shape the Bus produces for a retraction.
func InvalidFact(fact Fact) Token {
	return Token{tag: Invalid, data: []Fact{fact}, context: Context{}}
}

// Tag returns the token's VALID/INVALID marker.
func (t Token) Tag() Tag { return t.tag }

// IsValid reports whether the token is an assertion.
func (t Token) IsValid() bool { return t.tag == Valid }

// Data returns the token's fact set. Callers must not mutate the returned
// slice.
func (t Token) Data() []Fact { return t.data }

// Context returns the token's binding context. Callers must not mutate the
// returned map.
func (t Token) Context() Context { return t.context }

// WithContext returns a copy of the token carrying a different context,
// leaving the tag and data untouched.
func (t Token) WithContext(ctx Context) Token {
	return Token{tag: t.tag, data: t.data, context: ctx}
}

// WithTag returns a copy of the token carrying a different tag, leaving data
// and context untouched.
func (t Token) WithTag(tag Tag) Token {
	return Token{tag: tag, data: t.data, context: t.context}
}

// Info is the content-identity projection of a token — the (data, context)
// pair used as a memory key. Tag is deliberately excluded: per spec §3.3,
// the identity of a token for bookkeeping purposes never includes its tag.
type Info struct {
	data    []Fact
	context Context
	key     string
}

// ToInfo projects a token onto its content identity.
func (t Token) ToInfo() Info {
	return Info{data: t.data, context: t.context, key: infoKey(t.data, t.context)}
}

// Data returns the facts carried by this identity.
func (i Info) Data() []Fact { return i.data }

// Context returns the binding context carried by this identity.
func (i Info) Context() Context { return i.context }

// Equal reports whether two infos share the same content identity: same
// fact set (order-independent) and same context (key order-independent).
func (i Info) Equal(other Info) bool {
	return i.key == other.key
}

// ToValidToken reconstitutes a VALID token from this content identity.
func (i Info) ToValidToken() Token {
	return Token{tag: Valid, data: i.data, context: i.context}
}

// ToInvalidToken reconstitutes an INVALID token from this content identity.
func (i Info) ToInvalidToken() Token {
	return Token{tag: Invalid, data: i.data, context: i.context}
}

// infoKey builds a canonical, order-independent string key for a (data,
// context) pair. Facts and context entries are rendered with %#v and sorted
// before joining, so two content-identities that differ only in the order
// their facts arrived or their bindings were inserted hash identically —
// the "stable order-independent hash" the design notes call for.
func infoKey(data []Fact, context Context) string {
	factParts := make([]string, len(data))
	for i, f := range data {
		factParts[i] = fmt.Sprintf("%#v", f)
	}
	sort.Strings(factParts)

	ctxParts := make([]string, 0, len(context))
	for k, v := range context {
		ctxParts = append(ctxParts, fmt.Sprintf("%s=%#v", k, v))
	}
	sort.Strings(ctxParts)

	var b strings.Builder
	b.WriteString("F:")
	b.WriteString(strings.Join(factParts, "|"))
	b.WriteString(";C:")
	b.WriteString(strings.Join(ctxParts, "|"))
	return b.String()
}

// dedupeFacts folds duplicate facts (by ==) into a single entry, preserving
// first-seen order, so a self-joining pattern that unions a fact with itself
// keeps the token's data a true set.
func dedupeFacts(facts []Fact) []Fact {
	out := make([]Fact, 0, len(facts))
	for _, f := range facts {
		seen := false
		for _, existing := range out {
			if existing == f {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, f)
		}
	}
	return out
}

// unionFacts returns the set union of two fact slices, deduplicating
// matches (by ==) and preserving first-seen order.
func unionFacts(a, b []Fact) []Fact {
	return dedupeFacts(append(append([]Fact{}, a...), b...))
}
