// Package cashflow values series of dated cashflows.
//
// The core functionalities include:
//   - Present Value: compounding or discounting every cashflow of a series to
//     its most recent time point, the anchor, at a given interest rate.
//   - XIRR: solving for the interest rate that makes that present value zero,
//     for irregularly timed cashflows.
//   - Request Normalization: turning raw user options (bare values, year
//     offsets, or calendar dates in a configurable format, possibly read from a
//     CSV, XLSX or JSON file) into an immutable, validated request.
//
// Amounts are signed: deposits and other inflows are positive, withdrawals
// are negative. Times are fractional years, see [date.Date.FractionalYear].
//
// This package serves as the foundational logic for the `cfc` command-line
// tool.
package cashflow
