package models_test

import (
	"github.com/cofrinho/backend/internal/models"
)

func (suite *TestSuiteStandard) TestFamilyCodeIsGenerated() {
	owner := suite.createTestUser("user-family-1", "family1@example.com")

	family := models.Family{Name: " Silva ", OwnerID: owner.ID}
	err := models.DB.Create(&family).Error
	suite.Require().Nil(err)

	suite.Assert().NotEmpty(family.Code)
	suite.Assert().Equal("Silva", family.Name)

	other := models.Family{Name: "Souza", OwnerID: owner.ID}
	err = models.DB.Create(&other).Error
	suite.Require().Nil(err)
	suite.Assert().NotEqual(family.Code, other.Code)
}

func (suite *TestSuiteStandard) TestFamilyUsersSorted() {
	owner := suite.createTestUser("user-family-2", "family2@example.com")

	family := models.Family{Name: "Silva", OwnerID: owner.ID}
	err := models.DB.Create(&family).Error
	suite.Require().Nil(err)

	zilda := models.User{ID: "user-family-3", Email: "zilda@example.com", Name: "Zilda"}
	ana := models.User{ID: "user-family-4", Email: "ana@example.com", Name: "Ana"}
	for _, user := range []*models.User{&zilda, &ana} {
		user.FamilyID = &family.ID
		err = models.DB.Create(user).Error
		suite.Require().Nil(err)
	}

	members, err := family.Users(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(members, 2)
	suite.Assert().Equal("Ana", members[0].Name)
	suite.Assert().Equal("Zilda", members[1].Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser("user-family-5", "duplicate@example.com")

	duplicate := models.User{ID: "user-family-6", Email: "duplicate@example.com", Name: "Duplicate"}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserFamilyMemberIDs() {
	alone := suite.createTestUser("user-family-7", "family7@example.com")

	ids, err := alone.FamilyMemberIDs(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{alone.ID}, ids)

	family := models.Family{Name: "Silva", OwnerID: alone.ID}
	err = models.DB.Create(&family).Error
	suite.Require().Nil(err)

	sibling := models.User{ID: "user-family-8", Email: "family8@example.com", Name: "Sibling", FamilyID: &family.ID}
	err = models.DB.Create(&sibling).Error
	suite.Require().Nil(err)

	alone.FamilyID = &family.ID
	err = models.DB.Save(&alone).Error
	suite.Require().Nil(err)

	ids, err = alone.FamilyMemberIDs(models.DB)
	suite.Require().Nil(err)
	suite.Assert().ElementsMatch([]string{alone.ID, sibling.ID}, ids)
}
