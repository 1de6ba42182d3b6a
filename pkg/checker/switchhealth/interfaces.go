/*
 * Copyright 2025 Carver Automation Corporation.
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

// Package switchhealth pkg/checker/switchhealth/interfaces.go

package switchhealth

import "context"

//go:generate mockgen -destination=mock_source.go -package=switchhealth github.com/carverauto/switchprobe/pkg/checker/switchhealth MetricSource

// MetricSource is the transport contract the evaluator depends on. The
// implementation owns connection handling, timeouts and retries; the
// evaluator only sees values or errors.
type MetricSource interface {
	// GetScalar retrieves exactly one value by OID.
	GetScalar(ctx context.Context, oid string) (RawValue, error)
	// WalkTable retrieves all values under an OID prefix, one per row index.
	// An empty table is a valid result, not an error.
	WalkTable(ctx context.Context, prefix string) (*Table, error)
}
