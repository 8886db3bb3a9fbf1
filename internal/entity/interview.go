package entity

// InterviewStats are aggregate interview numbers for one worker. There is no
// interview store yet; providers of this type are placeholders until one
// exists.
type InterviewStats struct {
	Scheduled int `json:"interviewsScheduled"`
	Accepted  int `json:"interviewsAccepted"`
	Declined  int `json:"interviewsDeclined"`
}
