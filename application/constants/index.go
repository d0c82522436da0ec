package constants

// blinkgate response codes
// these consist of 4 digit numbers
//
// the 1st 3 are randomly generated but represent specific scenarios
// 4th indicates if the response requires user interaction through a dialog box. 0 means it does not require. 1 means it requires.

var ACCOUNT_CREATED uint = 9110              // tell the user to open the verification link in their inbox
var ACCOUNT_EXISTS_UNVERIFIED uint = 9130    // a fresh verification link has been sent to the existing account
var EMAIL_VERIFICATION_REQUIRED uint = 4110  // the email must be verified before the camera session can start
var VERIFICATION_TOKEN_EXPIRED uint = 4230   // request a new verification link
var LIVENESS_SESSION_EXPIRED uint = 4370     // restart the blink gesture from the beginning
var RESEND_THROTTLED uint = 5210             // wait before requesting another verification email

var SUPPORT_EMAIL = "help@blinkgate.io"

// how often the browser is expected to submit a frame while the
// camera session is active
var FRAME_CAPTURE_INTERVAL_MS = 200
