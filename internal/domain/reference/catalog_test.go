package reference

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = NewCatalog()
	s.catalog.Add(TableTraits,
		Entry{ID: "Trait_RedTalonTraining", DisplayName: "Red Talon Training"},
		Entry{ID: "Trait_Gourmet", DisplayName: "Gourmet"},
		Entry{ID: "Trait_Duplicate", DisplayName: "gourmet"},
		Entry{ID: "", DisplayName: "No ID"},
	)
	s.catalog.Add(TableVoices,
		Entry{ID: "Kee", DisplayName: "Kee (Default)"},
		Entry{ID: "Maya", DisplayName: "Maya"},
	)
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestResolve_ByDisplayName() {
	id, ok := s.catalog.Resolve(TableTraits, "Red Talon Training")
	s.True(ok)
	s.Equal("Trait_RedTalonTraining", id)
}

func (s *CatalogTestSuite) TestResolve_FoldsCaseAndSpacing() {
	id, ok := s.catalog.Resolve(TableTraits, "  RED   talon training ")
	s.True(ok)
	s.Equal("Trait_RedTalonTraining", id)
}

func (s *CatalogTestSuite) TestResolve_FirstDisplayNameWins() {
	id, ok := s.catalog.Resolve(TableTraits, "Gourmet")
	s.True(ok)
	s.Equal("Trait_Gourmet", id)
}

func (s *CatalogTestSuite) TestResolve_CanonicalPassthrough() {
	id, ok := s.catalog.Resolve(TableTraits, "Trait_Duplicate")
	s.True(ok)
	s.Equal("Trait_Duplicate", id)
}

func (s *CatalogTestSuite) TestResolve_Misses() {
	_, ok := s.catalog.Resolve(TableTraits, "Unknown Trait")
	s.False(ok)

	_, ok = s.catalog.Resolve(TableWeapons, "Red Talon Training")
	s.False(ok, "tables are independent")

	_, ok = s.catalog.Resolve(TableTraits, "")
	s.False(ok)

	_, ok = s.catalog.Resolve(TableTraits, "No ID")
	s.False(ok, "entries without an ID are skipped")
}

func (s *CatalogTestSuite) TestDefault() {
	s.Equal("Kee", s.catalog.Default(TableVoices))
	s.Equal("", s.catalog.Default(TableSkills))
}

func (s *CatalogTestSuite) TestEntriesAndLen() {
	entries := s.catalog.Entries(TableVoices)
	s.Len(entries, 2)
	entries[0].ID = "mutated"
	s.Equal("Kee", s.catalog.Default(TableVoices), "Entries returns a copy")

	s.Equal(5, s.catalog.Len())
}

func TestCatalog_NilAndZeroValue(t *testing.T) {
	var nilCatalog *Catalog
	_, ok := nilCatalog.Resolve(TableTraits, "Gourmet")
	assert.False(t, ok)
	assert.Equal(t, "", nilCatalog.Default(TableVoices))
	assert.Nil(t, nilCatalog.Entries(TableVoices))
	assert.Equal(t, 0, nilCatalog.Len())

	_, ok = Empty.Resolve(TableTraits, "Gourmet")
	assert.False(t, ok)

	var zero Catalog
	zero.Add(TableSkills, Entry{ID: "Skill_Computers", DisplayName: "Computers"})
	id, ok := zero.Resolve(TableSkills, "computers")
	assert.True(t, ok)
	assert.Equal(t, "Skill_Computers", id)
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := NewCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(TableItems, Entry{ID: "Item_Bandage", DisplayName: "Bandages"})
			c.Resolve(TableItems, "bandages")
		}()
	}
	wg.Wait()

	id, ok := c.Resolve(TableItems, "Bandages")
	assert.True(t, ok)
	assert.Equal(t, "Item_Bandage", id)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "red talon", NormalizeName("  Red\tTALON "))
	assert.Equal(t, NormalizeName("GOURMET"), NormalizeName("gourmet"))
}
