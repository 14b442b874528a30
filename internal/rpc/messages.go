package rpc

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

type RegisterRequest struct {
	Handle   string
	Email    string
	Password string
}

func (m *RegisterRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.Handle)
	e.str(2, m.Email)
	e.str(3, m.Password)
	return e
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.Handle)
		case 2:
			return readString(typ, b, &m.Email)
		case 3:
			return readString(typ, b, &m.Password)
		}
		return 0
	})
}

type RegisterResponse struct {
	UserID       string
	Token        string
	RefreshToken string
}

func (m *RegisterResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.UserID)
	e.str(2, m.Token)
	e.str(3, m.RefreshToken)
	return e
}

func (m *RegisterResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.UserID)
		case 2:
			return readString(typ, b, &m.Token)
		case 3:
			return readString(typ, b, &m.RefreshToken)
		}
		return 0
	})
}

type LoginRequest struct {
	Handle   string
	Password string
}

func (m *LoginRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.Handle)
	e.str(2, m.Password)
	return e
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.Handle)
		case 2:
			return readString(typ, b, &m.Password)
		}
		return 0
	})
}

type LoginResponse struct {
	Token        string
	UserID       string
	Handle       string
	RefreshToken string
}

func (m *LoginResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.Token)
	e.str(2, m.UserID)
	e.str(3, m.Handle)
	e.str(4, m.RefreshToken)
	return e
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.Token)
		case 2:
			return readString(typ, b, &m.UserID)
		case 3:
			return readString(typ, b, &m.Handle)
		case 4:
			return readString(typ, b, &m.RefreshToken)
		}
		return 0
	})
}

type RefreshRequest struct {
	RefreshToken string
}

func (m *RefreshRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.RefreshToken)
	return e
}

func (m *RefreshRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return readString(typ, b, &m.RefreshToken)
		}
		return 0
	})
}

type RefreshResponse struct {
	Token        string
	RefreshToken string
}

func (m *RefreshResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.Token)
	e.str(2, m.RefreshToken)
	return e
}

func (m *RefreshResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.Token)
		case 2:
			return readString(typ, b, &m.RefreshToken)
		}
		return 0
	})
}

// Empty is used for requests and responses without fields.
type Empty struct{}

func (*Empty) MarshalWire() []byte { return nil }

func (*Empty) UnmarshalWire(b []byte) error {
	return decode(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type Attachment struct {
	Filename string
	Content  []byte
}

func (m *Attachment) MarshalWire() []byte {
	var e enc
	e.str(1, m.Filename)
	e.bytes(2, m.Content)
	return e
}

func (m *Attachment) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.Filename)
		case 2:
			return readBytes(typ, b, &m.Content)
		}
		return 0
	})
}

type SubmitCaseRequest struct {
	ReporterName    string
	ReporterAddress string
	Description     string
	Anonymous       bool
	TermsAccepted   bool
	CaseSecret      string
	Attachments     []*Attachment
}

func (m *SubmitCaseRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.ReporterName)
	e.str(2, m.ReporterAddress)
	e.str(3, m.Description)
	e.boolean(4, m.Anonymous)
	e.boolean(5, m.TermsAccepted)
	e.str(6, m.CaseSecret)
	for _, a := range m.Attachments {
		e.msg(7, a)
	}
	return e
}

func (m *SubmitCaseRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.ReporterName)
		case 2:
			return readString(typ, b, &m.ReporterAddress)
		case 3:
			return readString(typ, b, &m.Description)
		case 4:
			return readBool(typ, b, &m.Anonymous)
		case 5:
			return readBool(typ, b, &m.TermsAccepted)
		case 6:
			return readString(typ, b, &m.CaseSecret)
		case 7:
			a := &Attachment{}
			n := readMsg(typ, b, a)
			if n > 0 {
				m.Attachments = append(m.Attachments, a)
			}
			return n
		}
		return 0
	})
}

type SubmitCaseResponse struct {
	CaseID string
	Status string
}

func (m *SubmitCaseResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	e.str(2, m.Status)
	return e
}

func (m *SubmitCaseResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.CaseID)
		case 2:
			return readString(typ, b, &m.Status)
		}
		return 0
	})
}

type Case struct {
	CaseID          string
	ReporterName    string
	ReporterAddress string
	Description     string
	Anonymous       bool
	Attachments     []string
	Status          string
	CreatedAt       time.Time
}

func (m *Case) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	e.str(2, m.ReporterName)
	e.str(3, m.ReporterAddress)
	e.str(4, m.Description)
	e.boolean(5, m.Anonymous)
	e.strs(6, m.Attachments)
	e.str(7, m.Status)
	e.time(8, m.CreatedAt)
	return e
}

func (m *Case) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.CaseID)
		case 2:
			return readString(typ, b, &m.ReporterName)
		case 3:
			return readString(typ, b, &m.ReporterAddress)
		case 4:
			return readString(typ, b, &m.Description)
		case 5:
			return readBool(typ, b, &m.Anonymous)
		case 6:
			return appendString(typ, b, &m.Attachments)
		case 7:
			return readString(typ, b, &m.Status)
		case 8:
			return readTime(typ, b, &m.CreatedAt)
		}
		return 0
	})
}

type ListCasesResponse struct {
	Cases []*Case
}

func (m *ListCasesResponse) MarshalWire() []byte {
	var e enc
	for _, c := range m.Cases {
		e.msg(1, c)
	}
	return e
}

func (m *ListCasesResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		c := &Case{}
		n := readMsg(typ, b, c)
		if n > 0 {
			m.Cases = append(m.Cases, c)
		}
		return n
	})
}

type ScheduleAppointmentRequest struct {
	CaseID string
	Date   string
	Time   string
}

func (m *ScheduleAppointmentRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	e.str(2, m.Date)
	e.str(3, m.Time)
	return e
}

func (m *ScheduleAppointmentRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.CaseID)
		case 2:
			return readString(typ, b, &m.Date)
		case 3:
			return readString(typ, b, &m.Time)
		}
		return 0
	})
}

type ScheduleAppointmentResponse struct {
	AppointmentID     string
	Status            string
	AppointmentStatus string
}

func (m *ScheduleAppointmentResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.AppointmentID)
	e.str(2, m.Status)
	e.str(3, m.AppointmentStatus)
	return e
}

func (m *ScheduleAppointmentResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.AppointmentID)
		case 2:
			return readString(typ, b, &m.Status)
		case 3:
			return readString(typ, b, &m.AppointmentStatus)
		}
		return 0
	})
}

type Appointment struct {
	ID        string
	CaseID    string
	Date      string
	Time      string
	Status    string
	CreatedAt time.Time
}

func (m *Appointment) MarshalWire() []byte {
	var e enc
	e.str(1, m.ID)
	e.str(2, m.CaseID)
	e.str(3, m.Date)
	e.str(4, m.Time)
	e.str(5, m.Status)
	e.time(6, m.CreatedAt)
	return e
}

func (m *Appointment) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.ID)
		case 2:
			return readString(typ, b, &m.CaseID)
		case 3:
			return readString(typ, b, &m.Date)
		case 4:
			return readString(typ, b, &m.Time)
		case 5:
			return readString(typ, b, &m.Status)
		case 6:
			return readTime(typ, b, &m.CreatedAt)
		}
		return 0
	})
}

type ListAppointmentsRequest struct {
	CaseID string
}

func (m *ListAppointmentsRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	return e
}

func (m *ListAppointmentsRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return readString(typ, b, &m.CaseID)
		}
		return 0
	})
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment
}

func (m *ListAppointmentsResponse) MarshalWire() []byte {
	var e enc
	for _, a := range m.Appointments {
		e.msg(1, a)
	}
	return e
}

func (m *ListAppointmentsResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		a := &Appointment{}
		n := readMsg(typ, b, a)
		if n > 0 {
			m.Appointments = append(m.Appointments, a)
		}
		return n
	})
}

type LookupCaseRequest struct {
	CaseID     string
	CaseSecret string
}

func (m *LookupCaseRequest) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	e.str(2, m.CaseSecret)
	return e
}

func (m *LookupCaseRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.CaseID)
		case 2:
			return readString(typ, b, &m.CaseSecret)
		}
		return 0
	})
}

type LookupCaseResponse struct {
	CaseID    string
	Status    string
	CreatedAt time.Time
}

func (m *LookupCaseResponse) MarshalWire() []byte {
	var e enc
	e.str(1, m.CaseID)
	e.str(2, m.Status)
	e.time(3, m.CreatedAt)
	return e
}

func (m *LookupCaseResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return readString(typ, b, &m.CaseID)
		case 2:
			return readString(typ, b, &m.Status)
		case 3:
			return readTime(typ, b, &m.CreatedAt)
		}
		return 0
	})
}
