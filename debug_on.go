// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build debug

package dancezdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	logger.SetOutput(os.Stdout)
}

// ******************************************************************************************************

// logTable dumps every active node of the node arena to the standard log, one
// line per node, for use while chasing a sanity-check failure.
func (z *ZDD) logTable() {
	if z.err != nil {
		log.Printf("ERROR: %s\n", z.err)
	}
	for k, n := range z.table {
		if !n.active {
			continue
		}
		log.Printf("%-4d (var %-4d, hi %-4d, lo %-4d) up:%-4d down:%-4d chi:%-4d clo:%-4d cup:%-4d\n",
			k, n.v, n.hi, n.lo, n.up, n.down, n.countHi, n.countLo, n.countUpper)
	}
}
