package rop

import "strconv"

// Code classifies an Error. Application codes come first; the rest mirror
// HTTP status codes and are used purely as labels.
type Code int

// Application errors
const (
	CodeFailure Code = iota
	CodeCreation
	CodeValidation
)

// 3xx
const (
	CodeMultipleChoices   Code = 300
	CodeMovedPermanently  Code = 301
	CodeFound             Code = 302
	CodeSeeOther          Code = 303
	CodeNotModified       Code = 304
	CodeUseProxy          Code = 305
	CodeTemporaryRedirect Code = 307
	CodePermanentRedirect Code = 308
)

// 4xx
const (
	CodeBadRequest                  Code = 400
	CodeUnauthorized                Code = 401
	CodePaymentRequired             Code = 402
	CodeForbidden                   Code = 403
	CodeNotFound                    Code = 404
	CodeMethodNotAllowed            Code = 405
	CodeNotAcceptable               Code = 406
	CodeProxyAuthenticationRequired Code = 407
	CodeRequestTimeout              Code = 408
	CodeConflict                    Code = 409
	CodeGone                        Code = 410
	CodeLengthRequired              Code = 411
	CodePreconditionFailed          Code = 412
	CodePayloadTooLarge             Code = 413
	CodeURITooLong                  Code = 414
	CodeUnsupportedMediaType        Code = 415
	CodeRangeNotSatisfiable         Code = 416
	CodeExpectationFailed           Code = 417
	CodeImATeapot                   Code = 418
	CodeMisdirectedRequest          Code = 421
	CodeUnprocessableEntity         Code = 422
	CodeLocked                      Code = 423
	CodeFailedDependency            Code = 424
	CodeTooEarly                    Code = 425
	CodeUpgradeRequired             Code = 426
	CodePreconditionRequired        Code = 428
	CodeTooManyRequests             Code = 429
	CodeRequestHeaderFieldsTooLarge Code = 431
	CodeUnavailableForLegalReasons  Code = 451
)

// 5xx
const (
	CodeInternalServerError           Code = 500
	CodeNotImplemented                Code = 501
	CodeBadGateway                    Code = 502
	CodeServiceUnavailable            Code = 503
	CodeGatewayTimeout                Code = 504
	CodeHTTPVersionNotSupported       Code = 505
	CodeVariantAlsoNegotiates         Code = 506
	CodeInsufficientStorage           Code = 507
	CodeLoopDetected                  Code = 508
	CodeNotExtended                   Code = 510
	CodeNetworkAuthenticationRequired Code = 511
)

var codeNames = map[Code]string{
	CodeFailure:    "Failure",
	CodeCreation:   "Creation",
	CodeValidation: "Validation",

	CodeMultipleChoices:   "MultipleChoices",
	CodeMovedPermanently:  "MovedPermanently",
	CodeFound:             "Found",
	CodeSeeOther:          "SeeOther",
	CodeNotModified:       "NotModified",
	CodeUseProxy:          "UseProxy",
	CodeTemporaryRedirect: "TemporaryRedirect",
	CodePermanentRedirect: "PermanentRedirect",

	CodeBadRequest:                  "BadRequest",
	CodeUnauthorized:                "Unauthorized",
	CodePaymentRequired:             "PaymentRequired",
	CodeForbidden:                   "Forbidden",
	CodeNotFound:                    "NotFound",
	CodeMethodNotAllowed:            "MethodNotAllowed",
	CodeNotAcceptable:               "NotAcceptable",
	CodeProxyAuthenticationRequired: "ProxyAuthenticationRequired",
	CodeRequestTimeout:              "RequestTimeout",
	CodeConflict:                    "Conflict",
	CodeGone:                        "Gone",
	CodeLengthRequired:              "LengthRequired",
	CodePreconditionFailed:          "PreconditionFailed",
	CodePayloadTooLarge:             "PayloadTooLarge",
	CodeURITooLong:                  "URITooLong",
	CodeUnsupportedMediaType:        "UnsupportedMediaType",
	CodeRangeNotSatisfiable:         "RangeNotSatisfiable",
	CodeExpectationFailed:           "ExpectationFailed",
	CodeImATeapot:                   "ImATeapot",
	CodeMisdirectedRequest:          "MisdirectedRequest",
	CodeUnprocessableEntity:         "UnprocessableEntity",
	CodeLocked:                      "Locked",
	CodeFailedDependency:            "FailedDependency",
	CodeTooEarly:                    "TooEarly",
	CodeUpgradeRequired:             "UpgradeRequired",
	CodePreconditionRequired:        "PreconditionRequired",
	CodeTooManyRequests:             "TooManyRequests",
	CodeRequestHeaderFieldsTooLarge: "RequestHeaderFieldsTooLarge",
	CodeUnavailableForLegalReasons:  "UnavailableForLegalReasons",

	CodeInternalServerError:           "InternalServerError",
	CodeNotImplemented:                "NotImplemented",
	CodeBadGateway:                    "BadGateway",
	CodeServiceUnavailable:            "ServiceUnavailable",
	CodeGatewayTimeout:                "GatewayTimeout",
	CodeHTTPVersionNotSupported:       "HTTPVersionNotSupported",
	CodeVariantAlsoNegotiates:         "VariantAlsoNegotiates",
	CodeInsufficientStorage:           "InsufficientStorage",
	CodeLoopDetected:                  "LoopDetected",
	CodeNotExtended:                   "NotExtended",
	CodeNetworkAuthenticationRequired: "NetworkAuthenticationRequired",
}

// String returns the code name, or "Code(n)" for codes outside the table.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// IsKnown reports whether c is one of the predefined codes.
func (c Code) IsKnown() bool {
	_, ok := codeNames[c]
	return ok
}

// IsHTTP reports whether c is one of the HTTP-derived labels.
func (c Code) IsHTTP() bool {
	return c >= 300 && c < 600 && c.IsKnown()
}
