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

//go:build !debug

package dancezdd

import "log"

// _DEBUG and _LOGLEVEL gate the extra debug output; _DEBUG makes seterror
// (errors.go) log every error it records. Build with -tags debug to turn
// them on; see debug_on.go.
const _DEBUG bool = false
const _LOGLEVEL int = 0

var logger = log.New(log.Writer(), "", log.LstdFlags)
