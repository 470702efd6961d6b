package domain

import "time"

// WizardStep is the state of a booking selection
type WizardStep string

const (
	StepCollectingContactInfo     WizardStep = "collecting_contact_info"
	StepChoosingServiceAndOptions WizardStep = "choosing_service_and_options"
	StepChoosingDateTime          WizardStep = "choosing_date_time"
	StepReviewAndSubmit           WizardStep = "review_and_submit"
	StepSubmitted                 WizardStep = "submitted"
)

// Selection is the transient booking choice of a customer.
// Transitions are value methods returning a new Selection; the receiver is never modified.
type Selection struct {
	Step        WizardStep
	Contact     Contact
	Service     *ServiceType
	Weight      *PetWeight
	Addons      AddonSet
	Date        *time.Time
	StartHour   *int
	SubmittedAt *time.Time
}

// NewSelection returns an empty selection at the first step
func NewSelection() Selection {
	return Selection{
		Step:   StepCollectingContactInfo,
		Addons: make(AddonSet),
	}
}

// clone copies the selection including its add-on set
func (s Selection) clone() Selection {
	cp := s
	cp.Addons = s.Addons.Clone()
	return cp
}

// IsVisit returns true if the chosen service is a visit-type service
func (s Selection) IsVisit(catalog *Catalog) bool {
	if s.Service == nil {
		return false
	}
	def, ok := catalog.Service(*s.Service)
	return ok && def.IsVisit()
}

// WithContact replaces the contact fields
func (s Selection) WithContact(contact Contact) Selection {
	next := s.clone()
	next.Contact = contact
	return next
}

// ChooseService sets the service. A different service resets the chosen time and
// drops add-ons that are no longer eligible (a visit drops all of them).
func (s Selection) ChooseService(catalog *Catalog, service ServiceType) Selection {
	next := s.clone()
	if s.Service == nil || *s.Service != service {
		next.StartHour = nil
	}
	next.Service = &service

	next.Addons = ReconcileAddons(catalog, next.Addons, next.Service, next.Weight)
	return next
}

// ChooseWeight sets the weight band and forces off add-ons that became ineligible
func (s Selection) ChooseWeight(catalog *Catalog, weight PetWeight) Selection {
	next := s.clone()
	next.Weight = &weight
	next.Addons = ReconcileOnWeightChange(catalog, next.Addons, next.Service, weight)
	return next
}

// ToggleAddon flips an add-on, honouring eligibility and exclusion groups
func (s Selection) ToggleAddon(catalog *Catalog, id AddonID) Selection {
	next := s.clone()
	next.Addons = ToggleAddon(catalog, s.Addons, id, s.Service, s.Weight)
	return next
}

// ChooseDate sets the date; a different date resets the chosen time
func (s Selection) ChooseDate(date time.Time) Selection {
	next := s.clone()
	day := DayStart(date)
	if s.Date == nil || !IsSameDay(*s.Date, day) {
		next.StartHour = nil
	}
	next.Date = &day
	return next
}

// ChooseTime sets the start hour. Availability is checked by the caller.
func (s Selection) ChooseTime(hour int) Selection {
	next := s.clone()
	next.StartHour = &hour
	return next
}

// StepComplete reports whether the local predicate of the current step holds
func (s Selection) StepComplete(catalog *Catalog) bool {
	switch s.Step {
	case StepCollectingContactInfo:
		return s.Contact.IsComplete()
	case StepChoosingServiceAndOptions:
		if s.Service == nil {
			return false
		}
		return s.IsVisit(catalog) || s.Weight != nil
	case StepChoosingDateTime:
		return s.Date != nil && s.StartHour != nil
	default:
		return false
	}
}

// Advance moves to the next step when the current one is complete.
// ok is false (and the selection unchanged) otherwise. Review advances only through submission.
func (s Selection) Advance(catalog *Catalog) (Selection, bool) {
	if !s.StepComplete(catalog) {
		return s, false
	}

	next := s.clone()
	switch s.Step {
	case StepCollectingContactInfo:
		next.Step = StepChoosingServiceAndOptions
	case StepChoosingServiceAndOptions:
		next.Step = StepChoosingDateTime
	case StepChoosingDateTime:
		next.Step = StepReviewAndSubmit
	}
	return next, true
}

// Back returns to the previous step; choices are kept
func (s Selection) Back() (Selection, bool) {
	next := s.clone()
	switch s.Step {
	case StepChoosingServiceAndOptions:
		next.Step = StepCollectingContactInfo
	case StepChoosingDateTime:
		next.Step = StepChoosingServiceAndOptions
	case StepReviewAndSubmit:
		next.Step = StepChoosingDateTime
	default:
		return s, false
	}
	return next, true
}

// ReadyToSubmit reports whether every field required for a booking is set
func (s Selection) ReadyToSubmit(catalog *Catalog) bool {
	if s.Step != StepReviewAndSubmit || !s.Contact.IsComplete() {
		return false
	}
	if s.Service == nil || (!s.IsVisit(catalog) && s.Weight == nil) {
		return false
	}
	return s.Date != nil && s.StartHour != nil
}

// SubmissionFailed returns the selection to review so the customer can retry
func (s Selection) SubmissionFailed() Selection {
	next := s.clone()
	next.Step = StepReviewAndSubmit
	next.SubmittedAt = nil
	return next
}

// SubmissionSucceeded marks the selection submitted at now
func (s Selection) SubmissionSucceeded(now time.Time) Selection {
	next := s.clone()
	next.Step = StepSubmitted
	next.SubmittedAt = &now
	return next
}

// Settle resets a submitted selection once the display delay has elapsed
func (s Selection) Settle(now time.Time, delay time.Duration) Selection {
	if s.Step != StepSubmitted || s.SubmittedAt == nil {
		return s
	}
	if now.Sub(*s.SubmittedAt) < delay {
		return s
	}
	return NewSelection()
}

// Quote returns the price breakdown of the selection
func (s Selection) Quote(catalog *Catalog) Quote {
	return ComputeQuote(catalog, s.Service, s.Weight, s.Addons)
}
