package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"connect-skills-backend/models"
	applicationapimodels "connect-skills-backend/models/api/application"
)

type Evaluation struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	VacancyID   string     `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy"`
	Vacancy     *Vacancy   `gorm:"foreignKey:VacancyID"`
	Score       int
	Breakdown   Breakdown `gorm:"type:jsonb"`
}

func (e Evaluation) ToModel() applicationapimodels.ApplicationView {
	view := applicationapimodels.ApplicationView{
		ID:          e.ID,
		CandidateID: e.CandidateID,
		VacancyID:   e.VacancyID,
		Score:       e.Score,
		CreatedAt:   e.CreatedAt,
	}
	if e.Breakdown.Video != nil {
		view.VideoStatus = e.Breakdown.Video.Status
	}
	if e.Breakdown.Feedback != nil {
		view.FeedbackStatus = e.Breakdown.Feedback.Status
	}
	if e.Vacancy != nil {
		view.VacancyTitle = e.Vacancy.Title
		if e.Vacancy.Company != nil {
			view.CompanyName = e.Vacancy.Company.Name
		}
	}
	if e.Candidate != nil {
		view.CandidateName = e.Candidate.FirstName + " " + e.Candidate.LastName
	}
	return view
}

// Breakdown is the per-evaluation notification state blob, stored as a single
// jsonb column. There is no separate notification table: notifications are
// derived from evaluation facts and the blob only carries their
// read/soft-dismiss flags. Every level keeps the keys it does not know about
// in Extra, so a read-modify-write cycle never drops data written by a newer
// version.
type Breakdown struct {
	Video                *NotificationState
	Feedback             *NotificationState
	CompanyNotifications *CompanyNotifications

	Extra map[string]json.RawMessage
}

type NotificationState struct {
	Status  string
	Deleted bool
	Read    bool

	Extra map[string]json.RawMessage
}

type CompanyNotifications struct {
	NewCandidate  *DismissFlag
	VideoReceived *DismissFlag

	Extra map[string]json.RawMessage
}

type DismissFlag struct {
	Deleted bool

	Extra map[string]json.RawMessage
}

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Breakdown{}
	for key, val := range raw {
		var err error
		switch key {
		case "video":
			b.Video = &NotificationState{}
			err = json.Unmarshal(val, b.Video)
		case "feedback":
			b.Feedback = &NotificationState{}
			err = json.Unmarshal(val, b.Feedback)
		case "company_notifications":
			b.CompanyNotifications = &CompanyNotifications{}
			err = json.Unmarshal(val, b.CompanyNotifications)
		default:
			b.Extra = putRaw(b.Extra, key, val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	out := copyRaw(b.Extra)
	if b.Video != nil {
		if err := setRaw(out, "video", b.Video); err != nil {
			return nil, err
		}
	}
	if b.Feedback != nil {
		if err := setRaw(out, "feedback", b.Feedback); err != nil {
			return nil, err
		}
	}
	if b.CompanyNotifications != nil {
		if err := setRaw(out, "company_notifications", b.CompanyNotifications); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func (n *NotificationState) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = NotificationState{}
	for key, val := range raw {
		var err error
		switch key {
		case "status":
			err = json.Unmarshal(val, &n.Status)
		case "deleted":
			err = json.Unmarshal(val, &n.Deleted)
		case "read":
			err = json.Unmarshal(val, &n.Read)
		default:
			n.Extra = putRaw(n.Extra, key, val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (n NotificationState) MarshalJSON() ([]byte, error) {
	out := copyRaw(n.Extra)
	if n.Status != "" {
		if err := setRaw(out, "status", n.Status); err != nil {
			return nil, err
		}
	}
	if n.Deleted {
		if err := setRaw(out, "deleted", n.Deleted); err != nil {
			return nil, err
		}
	}
	if n.Read {
		if err := setRaw(out, "read", n.Read); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func (c *CompanyNotifications) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CompanyNotifications{}
	for key, val := range raw {
		var err error
		switch key {
		case "new_candidate":
			c.NewCandidate = &DismissFlag{}
			err = json.Unmarshal(val, c.NewCandidate)
		case "video_received":
			c.VideoReceived = &DismissFlag{}
			err = json.Unmarshal(val, c.VideoReceived)
		default:
			c.Extra = putRaw(c.Extra, key, val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c CompanyNotifications) MarshalJSON() ([]byte, error) {
	out := copyRaw(c.Extra)
	if c.NewCandidate != nil {
		if err := setRaw(out, "new_candidate", c.NewCandidate); err != nil {
			return nil, err
		}
	}
	if c.VideoReceived != nil {
		if err := setRaw(out, "video_received", c.VideoReceived); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func (d *DismissFlag) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = DismissFlag{}
	for key, val := range raw {
		if key == "deleted" {
			if err := json.Unmarshal(val, &d.Deleted); err != nil {
				return err
			}
			continue
		}
		d.Extra = putRaw(d.Extra, key, val)
	}
	return nil
}

func (d DismissFlag) MarshalJSON() ([]byte, error) {
	out := copyRaw(d.Extra)
	if d.Deleted {
		if err := setRaw(out, "deleted", d.Deleted); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func putRaw(m map[string]json.RawMessage, key string, val json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		m = map[string]json.RawMessage{}
	}
	m[key] = val
	return m
}

func copyRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(m)+3)
	for key, val := range m {
		out[key] = val
	}
	return out
}

func setRaw(m map[string]json.RawMessage, key string, v interface{}) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[key] = val
	return nil
}

func (b Breakdown) Value() (driver.Value, error) {
	valueString, err := json.Marshal(b)
	return string(valueString), err
}

// Scan is tolerant: a corrupted blob must never abort the read path, it is
// treated as an empty state instead.
func (b *Breakdown) Scan(value interface{}) error {
	*b = Breakdown{}
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, b); err != nil {
		*b = Breakdown{}
	}
	return nil
}

func (b *Breakdown) EnsureVideo() *NotificationState {
	if b.Video == nil {
		b.Video = &NotificationState{}
	}
	return b.Video
}

func (b *Breakdown) EnsureFeedback() *NotificationState {
	if b.Feedback == nil {
		b.Feedback = &NotificationState{}
	}
	return b.Feedback
}

func (b *Breakdown) EnsureCompanyNotifications() *CompanyNotifications {
	if b.CompanyNotifications == nil {
		b.CompanyNotifications = &CompanyNotifications{}
	}
	return b.CompanyNotifications
}

func (c *CompanyNotifications) EnsureNewCandidate() *DismissFlag {
	if c.NewCandidate == nil {
		c.NewCandidate = &DismissFlag{}
	}
	return c.NewCandidate
}

func (c *CompanyNotifications) EnsureVideoReceived() *DismissFlag {
	if c.VideoReceived == nil {
		c.VideoReceived = &DismissFlag{}
	}
	return c.VideoReceived
}

func (b Breakdown) VideoRequested() bool {
	return b.Video != nil && b.Video.Status == string(models.VideoStatusRequested)
}

func (b Breakdown) FeedbackFinal() bool {
	return b.Feedback != nil && models.FeedbackStatus(b.Feedback.Status).IsFinal()
}
