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

// Package master implements reading the Aikatsu! master dictionary table.
//
// The master table is a UTF-8 text file. The first line is a header and is
// ignored. Each following non-blank line has exactly six tab separated
// columns:
//  1. The surface form as written.
//  2. The normalized surface form used by the IME.
//  3. The part of speech (e.g. 名詞).
//  4. The pronunciation (reading) in hiragana.
//  5. A comma separated list of series tags (aikatsu, stars, friends).
//  6. The entry kind (character or music).
package master
