package mapping

import (
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Entry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Date:        d.Date,
		Note:        d.Note,
		Mood:        int(d.Mood),
		Tags:        tags,
		ImagePath:   d.Image.String(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Entry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Date:        m.Date,
		Note:        m.Note,
		Mood:        domain.Mood(m.Mood),
		Tags:        tags,
		Image:       domain.ParseImageRef(m.ImagePath),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
