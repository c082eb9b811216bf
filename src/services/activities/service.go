package activities

import (
	"errors"
	"sort"
	"sync"
	"time"

	"mergington-activities/src/models"
)

var (
	// ErrActivityNotFound ไม่พบชื่อกิจกรรมใน registry
	ErrActivityNotFound = errors.New("Activity not found")

	// ErrValidationConflict is wrapped by every rejected roster write.
	ErrValidationConflict = errors.New("validation conflict")

	// ErrAlreadySignedUp email นี้ลงทะเบียนกิจกรรมนี้ไว้แล้ว
	ErrAlreadySignedUp = conflict("Student is already signed up")

	// ErrNotSignedUp unregister email ที่ไม่ได้อยู่ในรายชื่อผู้เข้าร่วม
	ErrNotSignedUp = conflict("Student is not signed up for this activity")
)

type conflictError struct{ msg string }

func conflict(msg string) error { return &conflictError{msg: msg} }

func (e *conflictError) Error() string { return e.msg }

func (e *conflictError) Unwrap() error { return ErrValidationConflict }

// RosterNotifier receives every successful roster change. It is called
// after the registry lock is released.
type RosterNotifier interface {
	RosterChanged(event models.RosterEvent)
}

type Option func(*Registry)

// WithNotifier ส่ง event ไปยัง notifier หลัง signup/unregister สำเร็จ
func WithNotifier(n RosterNotifier) Option {
	return func(r *Registry) { r.notifier = n }
}

// WithClock is used by tests to pin RosterEvent.OccurredAt.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// Registry is the in-memory collection of all activities, keyed by name.
// All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]models.Activity
	notifier   RosterNotifier
	now        func() time.Time
}

// NewRegistry สร้าง registry จาก seed (seed จะถูก copy ไม่ถูกแก้ไข)
func NewRegistry(seed map[string]models.Activity, opts ...Option) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.activities = cloneAll(seed)
	return r
}

// List คืน snapshot ของกิจกรรมทั้งหมด
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.activities)
}

// Names returns the activity names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.activities))
	for name := range r.activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Get(name string) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	activity, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Signup เพิ่ม email ต่อท้ายรายชื่อผู้เข้าร่วม (ลงซ้ำไม่ได้)
// max_participants ไม่ถูกใช้จำกัดจำนวน
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	activity, ok := r.activities[name]
	if !ok {
		r.mu.Unlock()
		return ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		r.mu.Unlock()
		return ErrAlreadySignedUp
	}
	activity = activity.Clone()
	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	event := r.event(name, email, models.RosterSignup, len(activity.Participants))
	r.mu.Unlock()

	r.notify(event)
	return nil
}

// Unregister ลบ email ออกจากรายชื่อผู้เข้าร่วม
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	activity, ok := r.activities[name]
	if !ok {
		r.mu.Unlock()
		return ErrActivityNotFound
	}
	activity, removed := activity.WithoutParticipant(email)
	if !removed {
		r.mu.Unlock()
		return ErrNotSignedUp
	}
	r.activities[name] = activity
	event := r.event(name, email, models.RosterUnregister, len(activity.Participants))
	r.mu.Unlock()

	r.notify(event)
	return nil
}

// Reset replaces the whole registry with a copy of seed.
func (r *Registry) Reset(seed map[string]models.Activity) {
	fresh := cloneAll(seed)
	r.mu.Lock()
	r.activities = fresh
	r.mu.Unlock()
}

func (r *Registry) event(name, email string, action models.RosterAction, count int) models.RosterEvent {
	return models.RosterEvent{
		Activity:     name,
		Email:        email,
		Action:       action,
		Participants: count,
		OccurredAt:   r.now().UTC(),
	}
}

func (r *Registry) notify(event models.RosterEvent) {
	if r.notifier == nil {
		return
	}
	r.notifier.RosterChanged(event)
}

func cloneAll(src map[string]models.Activity) map[string]models.Activity {
	out := make(map[string]models.Activity, len(src))
	for name, activity := range src {
		out[name] = activity.Clone()
	}
	return out
}
