//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package terminal talks to a VT100-compatible terminal directly.
//
// A Session owns raw mode: it captures the original attributes when
// it is opened and restores them exactly once when it is closed. The
// Decoder turns the raw byte stream into key events, WindowSize
// discovers the screen geometry, and a Frame batches one complete
// screen update so that it reaches the terminal in a single write.
package terminal
