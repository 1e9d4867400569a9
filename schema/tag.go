package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// DefaultTagName is the struct tag read by the introspector.
const DefaultTagName = "soql"

// ParsedTag represents a parsed soql struct tag.
type ParsedTag struct {
	FieldName string // API name (explicit or derived from the Go field name)
	Skip      bool   // Skip this field entirely (soql:"-")
	Custom    bool   // Append the __c suffix (soql:",custom")
}

// TagParser handles parsing and caching of soql struct tags.
type TagParser struct {
	tagName        string
	namingStrategy FieldNamingStrategy
	cache          map[string]*ParsedTag
	cacheMu        sync.RWMutex
}

// NewTagParser creates a tag parser reading tagName and deriving untagged
// names with namingStrategy.
func NewTagParser(tagName string, namingStrategy FieldNamingStrategy) *TagParser {
	if tagName == "" {
		tagName = DefaultTagName
	}
	return &TagParser{
		tagName:        tagName,
		namingStrategy: namingStrategy,
		cache:          make(map[string]*ParsedTag, 64),
	}
}

// ParseTag parses the tag of one struct field.
//
// Supported tag syntax:
//
//	`soql:"Name"`             // explicit API name
//	`soql:"Owner.Name"`       // relationship path, taken verbatim
//	`soql:"Region,custom"`    // Region__c
//	`soql:",custom"`          // derived name plus __c
//	`soql:"-"`                // skip field
func (p *TagParser) ParseTag(fieldName string, tag reflect.StructTag) (*ParsedTag, error) {
	tagValue, ok := tag.Lookup(p.tagName)
	if !ok || tagValue == "" {
		return &ParsedTag{FieldName: p.namingStrategy.FieldName(fieldName)}, nil
	}

	cacheKey := fieldName + ":" + tagValue
	p.cacheMu.RLock()
	if cached, exists := p.cache[cacheKey]; exists {
		p.cacheMu.RUnlock()
		return cached, nil
	}
	p.cacheMu.RUnlock()

	parsed, err := p.parseTagValue(fieldName, tagValue)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fieldName, err)
	}

	p.cacheMu.Lock()
	p.cache[cacheKey] = parsed
	p.cacheMu.Unlock()

	return parsed, nil
}

func (p *TagParser) parseTagValue(fieldName, tagValue string) (*ParsedTag, error) {
	if tagValue == "-" {
		return &ParsedTag{Skip: true}, nil
	}

	name, options, _ := strings.Cut(tagValue, ",")
	name = strings.TrimSpace(name)

	parsed := &ParsedTag{FieldName: name}
	if name == "" {
		parsed.FieldName = p.namingStrategy.FieldName(fieldName)
	}

	if options != "" {
		for _, option := range strings.Split(options, ",") {
			switch strings.TrimSpace(option) {
			case "custom":
				parsed.Custom = true
			case "":
			default:
				return nil, fmt.Errorf("unknown soql tag option %q", option)
			}
		}
	}

	if parsed.Custom {
		parsed.FieldName = customName(parsed.FieldName)
	}
	if strings.ContainsAny(parsed.FieldName, " \t,") {
		return nil, fmt.Errorf("invalid field name %q", parsed.FieldName)
	}

	return parsed, nil
}
