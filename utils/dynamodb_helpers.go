package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StringKey builds a single-attribute string primary key
func StringKey(field, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		field: &types.AttributeValueMemberS{Value: value},
	}
}

// StringValues builds expression attribute values from name/value pairs
func StringValues(pairs map[string]string) map[string]types.AttributeValue {
	values := make(map[string]types.AttributeValue, len(pairs))
	for name, value := range pairs {
		values[name] = &types.AttributeValueMemberS{Value: value}
	}
	return values
}

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}
