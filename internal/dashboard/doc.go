// Package dashboard renders the post-onboarding dashboard.
//
// The dashboard is a static demo: a greeting built from the onboarding record,
// three stat cards and a weekly task line chart. Everything except the
// greeting is fixed mock data. The record's theme picks the palette and its
// dashboardLayout picks how the stat cards are arranged:
//
//   - compact: fixed-width cards with a one-cell gap, wrapping onto more rows
//     when the terminal is narrow
//   - wide: three cards stretched across the full width, stacked when there
//     is not room for three
//
// Render is pure. It never fails, and unknown theme or layout values render
// with the defaults.
package dashboard
