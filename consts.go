package weblog

const (
	emptyString = ""

	// Replaceable tokens recognized in Config.PrefixFormat.
	tokenLevel = "[level]"
	tokenTime  = "[time]"

	// timestampLayout is the prefix timestamp format.
	timestampLayout = "2006-01-02T15:04:05"
	// dateLayout names the daily log file.
	dateLayout = "2006-01-02"
	// logFileExt is appended to the date-derived filename.
	logFileExt = ".log"
)

const (
	defaultOutputDir    = "./logs"
	defaultOutputLevel  = "INFO"
	defaultPrefixFormat = "[level][time] "
)

const errMsgConfigInvalid = "weblog configuration is invalid"
