package profile

import (
	"context"
	"fmt"
	"slices"
)

// AddEducation appends an education entry, assigning an id if it has none.
func (s *Service) AddEducation(ctx context.Context, p Profile, e Education) (Profile, error) {
	out := p.Clone()
	if e.ID == "" {
		e.ID = NewID()
	}
	out.Education = append(out.Education, e)
	return s.commit(ctx, out)
}

// RemoveEducation removes the education entry with the given id.
func (s *Service) RemoveEducation(ctx context.Context, p Profile, id string) (Profile, error) {
	out := p.Clone()
	list, err := removeByID(out.Education, id, func(e Education) string { return e.ID })
	if err != nil {
		return Profile{}, err
	}
	out.Education = list
	return s.commit(ctx, out)
}

// AddExperience appends an experience entry, assigning an id if it has none.
func (s *Service) AddExperience(ctx context.Context, p Profile, e Experience) (Profile, error) {
	out := p.Clone()
	if e.ID == "" {
		e.ID = NewID()
	}
	out.Experiences = append(out.Experiences, e)
	return s.commit(ctx, out)
}

// RemoveExperience removes the experience entry with the given id.
func (s *Service) RemoveExperience(ctx context.Context, p Profile, id string) (Profile, error) {
	out := p.Clone()
	list, err := removeByID(out.Experiences, id, func(e Experience) string { return e.ID })
	if err != nil {
		return Profile{}, err
	}
	out.Experiences = list
	return s.commit(ctx, out)
}

// AddCertification appends a certification, assigning an id if it has none.
func (s *Service) AddCertification(ctx context.Context, p Profile, c Certification) (Profile, error) {
	out := p.Clone()
	if c.ID == "" {
		c.ID = NewID()
	}
	out.Certifications = append(out.Certifications, c)
	return s.commit(ctx, out)
}

// RemoveCertification removes the certification with the given id.
func (s *Service) RemoveCertification(ctx context.Context, p Profile, id string) (Profile, error) {
	out := p.Clone()
	list, err := removeByID(out.Certifications, id, func(c Certification) string { return c.ID })
	if err != nil {
		return Profile{}, err
	}
	out.Certifications = list
	return s.commit(ctx, out)
}

func removeByID[T any](list []T, id string, idOf func(T) string) ([]T, error) {
	i := slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
	}
	return slices.Delete(list, i, i+1), nil
}
