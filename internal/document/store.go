package document

import "resumecraft/pkg/models"

// Store owns the document being edited and the cached listing of
// previously saved resumes. It is the only sanctioned mutation surface:
// every operation replaces the current document with a new value and is
// a silent no-op when no document exists or an identity/index does not
// match. None of the operations touch UpdatedAt; timestamps are stamped
// by the persistence paths only.
type Store struct {
	resume    *models.Resume
	summaries []models.Resume
}

// NewStore returns a store holding a fresh empty document.
func NewStore() *Store {
	return &Store{resume: models.NewResume()}
}

// Current returns a copy of the document being edited, or nil if the
// store was explicitly cleared. Callers never receive a mutable
// reference into the store.
func (s *Store) Current() *models.Resume {
	return s.resume.Clone()
}

// Summaries returns a copy of the cached listing collection.
func (s *Store) Summaries() []models.Resume {
	out := make([]models.Resume, len(s.summaries))
	copy(out, s.summaries)
	return out
}

// SetDocument replaces the current document wholesale.
func (s *Store) SetDocument(doc *models.Resume) {
	s.resume = doc.Clone()
}

// SetSummaryList replaces the cached listing collection.
func (s *Store) SetSummaryList(list []models.Resume) {
	s.summaries = make([]models.Resume, len(list))
	copy(s.summaries, list)
}

// UpdatePersonalInfo replaces the personal-info block wholesale.
func (s *Store) UpdatePersonalInfo(info models.PersonalInfo) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.PersonalInfo = info
	s.resume = next
}

// AddExperience appends an experience entry, preserving order.
func (s *Store) AddExperience(exp models.Experience) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Experiences = append(next.Experiences, exp)
	s.resume = next
}

// UpdateExperience replaces the entry whose id matches. The identity of
// the stored record never changes; an unknown id is a no-op.
func (s *Store) UpdateExperience(id string, exp models.Experience) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Experiences {
		if next.Experiences[i].ID == id {
			exp.ID = id
			next.Experiences[i] = exp
			break
		}
	}
	s.resume = next
}

// DeleteExperience removes the entry with the given id, if present.
func (s *Store) DeleteExperience(id string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Experiences {
		if next.Experiences[i].ID == id {
			next.Experiences = append(next.Experiences[:i], next.Experiences[i+1:]...)
			break
		}
	}
	s.resume = next
}

// ReorderExperience moves the entry at from to position to.
func (s *Store) ReorderExperience(from, to int) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Experiences = Move(next.Experiences, from, to)
	s.resume = next
}

// AddEducation appends an education entry, preserving order.
func (s *Store) AddEducation(edu models.Education) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Education = append(next.Education, edu)
	s.resume = next
}

// UpdateEducation replaces the entry whose id matches.
func (s *Store) UpdateEducation(id string, edu models.Education) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Education {
		if next.Education[i].ID == id {
			edu.ID = id
			next.Education[i] = edu
			break
		}
	}
	s.resume = next
}

// DeleteEducation removes the entry with the given id, if present.
func (s *Store) DeleteEducation(id string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Education {
		if next.Education[i].ID == id {
			next.Education = append(next.Education[:i], next.Education[i+1:]...)
			break
		}
	}
	s.resume = next
}

// ReorderEducation moves the entry at from to position to.
func (s *Store) ReorderEducation(from, to int) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Education = Move(next.Education, from, to)
	s.resume = next
}

// AddSkill appends a skill entry, preserving order.
func (s *Store) AddSkill(skill models.Skill) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Skills = append(next.Skills, skill)
	s.resume = next
}

// UpdateSkill replaces the entry whose id matches.
func (s *Store) UpdateSkill(id string, skill models.Skill) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Skills {
		if next.Skills[i].ID == id {
			skill.ID = id
			next.Skills[i] = skill
			break
		}
	}
	s.resume = next
}

// DeleteSkill removes the entry with the given id, if present.
func (s *Store) DeleteSkill(id string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	for i := range next.Skills {
		if next.Skills[i].ID == id {
			next.Skills = append(next.Skills[:i], next.Skills[i+1:]...)
			break
		}
	}
	s.resume = next
}

// ReorderSkill moves the entry at from to position to.
func (s *Store) ReorderSkill(from, to int) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Skills = Move(next.Skills, from, to)
	s.resume = next
}

// SetSelectedTemplate replaces the template identifier only.
func (s *Store) SetSelectedTemplate(id string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.SelectedTemplate = id
	s.resume = next
}

// SetStyleOverrides shallow-merges partial style overrides into the
// existing override block, creating it if absent.
func (s *Store) SetStyleOverrides(partial map[string]string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	if next.StyleOverrides == nil {
		next.StyleOverrides = make(map[string]string, len(partial))
	}
	for k, v := range partial {
		next.StyleOverrides[k] = v
	}
	s.resume = next
}

// ResetStyleOverrides clears the override block entirely.
func (s *Store) ResetStyleOverrides() {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.StyleOverrides = nil
	s.resume = next
}

// SetTitle replaces the document title only.
func (s *Store) SetTitle(title string) {
	if s.resume == nil {
		return
	}
	next := s.resume.Clone()
	next.Title = title
	s.resume = next
}

// ResetDocument replaces the current document with a fresh empty one.
func (s *Store) ResetDocument() {
	s.resume = models.NewResume()
}
