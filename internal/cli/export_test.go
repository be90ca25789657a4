package cli

// Export internal functions for testing.

// RunConfigSet exports runConfigSet for testing.
var RunConfigSet = runConfigSet

// RunConfigGet exports runConfigGet for testing.
var RunConfigGet = runConfigGet

// RunConfigList exports runConfigList for testing.
var RunConfigList = runConfigList

// IsValidConfigKey exports isValidConfigKey for testing.
var IsValidConfigKey = isValidConfigKey

// ValidConfigKeys exports validConfigKeys for testing.
var ValidConfigKeys = validConfigKeys

// ClampParallel exports clampParallel for testing.
var ClampParallel = clampParallel

// ParseTime exports parseTime for testing.
var ParseTime = parseTime

// MeetingRequest exports meetingRequest for testing.
var MeetingRequest = meetingRequest

// MeetingFlags exports meetingFlags for testing.
type MeetingFlags = meetingFlags

// DescribeRecord exports describeRecord for testing.
var DescribeRecord = describeRecord
