// Copyright 2025 Ian Lewis
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

package master

// Kind is the kind of a dictionary entry.
type Kind int

const (
	// CharacterKind is a character name entry.
	CharacterKind Kind = iota

	// MusicKind is a music title entry.
	MusicKind
)

var kindNames = [...]string{
	CharacterKind: "character",
	MusicKind:     "music",
}

// Kinds returns all entry kinds in declaration order.
func Kinds() []Kind {
	return []Kind{CharacterKind, MusicKind}
}

// ParseKind parses the string value of a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, &ValueError{Field: "kind", Value: s}
}

// Valid returns whether k is a member of the enumeration.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// String returns the master table value of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}
