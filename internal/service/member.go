package service

import (
	"context"
	"errors"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// VerifySponsor checks a sponsor name against the active members table.
// The match is exact and case-sensitive. An unknown name is not an error;
// it is a negative verification result.
func (s *memberService) VerifySponsor(ctx context.Context, name string) (*SponsorVerification, error) {
	member, err := s.memberRepo.FindByNameAndStatus(ctx, name, domain.MemberStatusActive)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return &SponsorVerification{IsValid: false}, nil
		}
		return nil, err
	}
	return &SponsorVerification{IsValid: true, Member: member}, nil
}

func (s *memberService) ListActive(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.ListActive(ctx)
}
