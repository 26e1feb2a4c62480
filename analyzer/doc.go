// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the guardcheck static analysis pass.
//
// # Overview
//
// A [fillmore-labs.com/guard.Guard] only runs its callback when it is
// finalized, so every guard must be followed by a deferred Exit. guardcheck
// reports guards where this is not the case.
//
// # Checks
//
//   - discarded (gc:dis): a guard is dropped where it is produced, so its
//     callback can never run. A discarded Move is rewritten to Dismiss.
//   - unfinalized (gc:fin): a local guard variable is neither finalized by a
//     deferred Exit nor handed off by returning, passing, storing, moving or
//     capturing it. The suggested fix adds the deferred Exit.
//   - deferred (gc:def): a guard is only finalized by a plain Exit call, which
//     panics and early returns skip.
//   - terminated (gc:ter): a call like os.Exit or log.Fatal ends the process
//     after a guard's Exit has been deferred. Deferred functions don't run on
//     process exit, so the callback is skipped.
//
// # Example
//
// Before:
//
//	func update(tx *Tx) error {
//	    rollback := guard.Make(tx.Rollback)  // never finalized
//	    if err := tx.Exec(); err != nil {
//	        return err
//	    }
//	    rollback.Dismiss()
//	    return tx.Commit()
//	}
//
// After applying guardcheck's suggested fix:
//
//	func update(tx *Tx) error {
//	    rollback := guard.Make(tx.Rollback)
//	    defer rollback.Exit()
//	    if err := tx.Exec(); err != nil {
//	        return err
//	    }
//	    rollback.Dismiss()
//	    return tx.Commit()
//	}
//
// Diagnostics are suppressed by a //nolint:guardcheck comment on the
// declaration's line, at the end of a function's doc comment, or at the end
// of the package comment of a file.
package analyzer
