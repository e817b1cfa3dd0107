package service

import (
	"errors"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrSubCommunityExists   = errors.New("sub-community already exists")
	ErrSubCommunityNotFound = errors.New("sub-community not found")
	ErrTeamMemberNotFound   = errors.New("team member not found")
)

// SubCommunityService 子社区与团队名单（官网介绍页的数据来源）
type SubCommunityService struct {
	repo     *mysql.SubCommunityRepository
	teamRepo *mysql.TeamMemberRepository
}

func NewSubCommunityService(db *gorm.DB) *SubCommunityService {
	return &SubCommunityService{
		repo:     &mysql.SubCommunityRepository{DB: db},
		teamRepo: &mysql.TeamMemberRepository{DB: db},
	}
}

func (s *SubCommunityService) Create(name, description, lead string) (*model.SubCommunity, error) {
	c := &model.SubCommunity{Name: name, Description: description, Lead: lead}
	if err := s.repo.Create(c); err != nil {
		if mysql.IsDuplicate(err) {
			return nil, ErrSubCommunityExists
		}
		return nil, err
	}
	return c, nil
}

func (s *SubCommunityService) List() ([]model.SubCommunity, error) {
	return s.repo.List()
}

func (s *SubCommunityService) Delete(name string) error {
	err := s.repo.DeleteByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubCommunityNotFound
	}
	return err
}

func (s *SubCommunityService) AddTeamMember(name, role, subCommunity, year string) (*model.TeamMember, error) {
	m := &model.TeamMember{Name: name, Role: role, SubCommunity: subCommunity, Year: year}
	if err := s.teamRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SubCommunityService) ListTeam() ([]model.TeamMember, error) {
	return s.teamRepo.List()
}

func (s *SubCommunityService) RemoveTeamMember(id uint64) error {
	err := s.teamRepo.DeleteByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTeamMemberNotFound
	}
	return err
}
