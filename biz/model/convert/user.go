package convert

import (
	"authgate/biz/model/domain"
	"authgate/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		UserId:   u.UserID,
		Email:    u.Email,
		Password: u.PasswordHash,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Email:        m.Email,
		PasswordHash: m.Password,
	}
}
