/*
Package status translates the loosely typed text returned by the storage service into typed result
codes.

Every operation has its own enum. The zero value of each is Unknown, which is reported together
with an *UnknownStatusError whenever the service answers with a status string the operation does
not know. Unknown is a distinct outcome from Failed: Failed means the service understood the
request and refused it.

	env, err := status.ParseResponse(text)
	if err != nil {
		return err
	}
	code, err := status.ParseDelete(env.Status)
	if errors.Is(err, boxsync.ErrUnknownStatus) {
		// the service returned something new
	}

Status strings are matched case-insensitively after trimming surrounding whitespace.
*/
package status
