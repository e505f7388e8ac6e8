// Package attrs defines telemetry attribute keys shared by the hyperstats middlewares,
// so traces and metrics use the same names for the same facts.
package attrs

const (
	// AttrMethod is the service method being observed.
	AttrMethod = "method"
	// AttrPathLength is the length of the dataset path passed to Load.
	AttrPathLength = "path.len"
	// AttrObservationsCount is the number of observations loaded or summarized.
	AttrObservationsCount = "observations.count"
	// AttrLoadReason is the loader outcome reason.
	AttrLoadReason = "load.reason"
	// AttrReportAvailable tells whether Compute produced a report.
	AttrReportAvailable = "report.available"
)
