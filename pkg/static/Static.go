package static

import "errors"

const SERVICE_NAME = "massview"

// Environment Constants
const (
	DOTENV_FILE = ".env"
	ENV_PREFIX  = "MASSVIEW"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// HTTP Defaults
const (
	DEFAULT_HOST       = "0.0.0.0"
	DEFAULT_PORT       = 8080
	DEFAULT_MAX_UPLOAD = 32 << 20
	DEFAULT_RATE_LIMIT = 10
	DEFAULT_BURST      = 20
)

// Histogram Defaults
const (
	DEFAULT_BINS    = 20
	DEFAULT_OPACITY = 0.7
	DEFAULT_HEIGHT  = 500
	DEFAULT_COLOR   = "gray"
)

// Plotly white theme colors
const (
	BACKGROUND_COLOR = "white"
	GRID_COLOR       = "#EBF0F8"
)

// Particle Types
const (
	PARTICLE_ELECTRON = 1
	PARTICLE_MUON     = 2
	PARTICLE_PHOTON   = 3
)

// Four Lepton Combinations
const (
	COMBINATION_4EE = "4ee"
	COMBINATION_4MM = "4mm"
	COMBINATION_4ME = "4me"
)

// View Modes
const (
	VIEW_ALL        = "all"
	VIEW_DILEPTON   = "dilepton"
	VIEW_FOURLEPTON = "fourlepton"
	VIEW_DIPHOTON   = "diphoton"
)

var ALLOWED_EXTENSIONS = []string{".csv", ".txt"}

// Response Constants
const (
	RESPONSE_NO_FILE        = "No file uploaded"
	RESPONSE_NO_SELECTION   = "No file selected"
	RESPONSE_BAD_EXTENSION  = "Only CSV and TXT files are allowed"
	RESPONSE_TOO_LARGE      = "File too large"
	RESPONSE_NO_DATA        = "No valid data found in file"
	RESPONSE_PROCESSING     = "Error processing file"
	RESPONSE_RATE_LIMITED   = "Too many uploads, slow down"
	RESPONSE_HEALTHY        = "service is healthy"
	RESPONSE_VERSION        = "service version"
	RESPONSE_INTERNAL_ERROR = "request errored on the server"
)

var ErrEmptyDataset = errors.New("dataset contains no valid events")
