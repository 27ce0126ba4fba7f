package disable

import "github.com/Imsleepyyy/MonitoRSS/pkg/domain"

// reject codes reported by the downstream fetch/delivery workers
const (
	RejectBadFormat          = "bad-format"
	RejectMissingChannel     = "missing-channel"
	RejectMissingPermissions = "missing-permissions"
	RejectForbidden          = "forbidden"
)

var disabledByReject = map[string]string{
	RejectBadFormat:          domain.DisabledCodeBadFormat,
	RejectMissingChannel:     domain.DisabledCodeMissingChannel,
	RejectMissingPermissions: domain.DisabledCodeMissingPermissions,
	RejectForbidden:          domain.DisabledCodeDeliveryForbidden,
}

// disabledCodeFor maps a worker reject code to the disabled code recorded on
// the entity. The mapping is total: an unrecognized code is a contract break
// with the event producer and maps to the generic rejected code, with ok false
// so the caller can surface it.
func disabledCodeFor(rejectCode string) (code string, ok bool) {
	if code, ok = disabledByReject[rejectCode]; ok {
		return code, true
	}
	return domain.DisabledCodeDeliveryRejected, false
}
