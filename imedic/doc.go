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

// Package imedic implements writing IME user dictionaries.
//
// Two dictionary targets are supported. Both use the same tab separated row
// layout (reading, surface, part of speech) terminated by CR/LF:
//  1. Google Japanese Input: UTF-8 text named google_dic_<kind>.txt.
//  2. ATOK: UTF-16 text with a byte order mark named atok_dic_<kind>.txt.
package imedic
