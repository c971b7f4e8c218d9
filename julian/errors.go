// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import "errors"

// ErrInvalidCalendarDate is returned for the dates 1582 October 5 through
// 1582 October 14 inclusive, which do not exist in the civil calendar.
var ErrInvalidCalendarDate = errors.New("invalid calendar date: CE 1582 October 5-14 are not real dates")
