// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contract provides validation limits for seqmap.
//
// # Sequence Size Limits
//
// seqmap enforces a soft limit on how many values a single run may map,
// so a stray input file cannot exhaust memory:
//
//	// Default limit is 16 Mi values
//	limit := contract.MaxValues()
//
//	result := contract.ValidateSequence(len(values))
//	if !result.OK {
//	    return fmt.Errorf("input rejected: %s", result.Message)
//	}
//
// # Configuration via Environment
//
// The limit can be adjusted via the SEQMAP_MAX_VALUES environment variable:
//
//	export SEQMAP_MAX_VALUES=1000000
//
// If the variable is not set or is not a positive integer, DefaultMaxValues
// is used.
package contract
