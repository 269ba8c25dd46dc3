package metrics

const Namespace = "massview"

var Uploads = NewCounter("uploads_total", "Total uploads by outcome", []string{"status"})
var HttpRequests = NewCounter("http_requests_total", "Total HTTP requests served", []string{"method", "path", "code"})

var EventsParsed = NewHistogram("events_parsed", "Events parsed per upload", []float64{10, 100, 1000, 10000, 100000, 1000000}, []string{})
var AnalysisDuration = NewHistogram("analysis_seconds", "Time spent building histograms and statistics", nil, []string{})
