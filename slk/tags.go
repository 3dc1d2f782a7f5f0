package slk

import (
	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/securitylake/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

type resourceParams struct {
	ResourceArn optional.Value[string]
}

func (p *resourceParams) bind(s *binder.Set) {
	binder.String(s, &p.ResourceArn, "ResourceArn", "ARN of the data lake or subscriber", binder.Required(), binder.FromPipeline())
}

func (p *resourceParams) target() string { return p.ResourceArn.Or("") }

func getResourceTag() cmdlet.Command {
	type (
		in  = securitylake.ListTagsForResourceInput
		out = securitylake.ListTagsForResourceOutput
	)
	return &cmdlet.Operation[resourceParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "ResourceTag",
		Service:  service,
		Action:   action("ListTagsForResource"),
		Synopsis: "Lists the tags of a data lake or subscriber.",
		Impact:   cmdlet.ImpactNone,
		Select:   "Tags",
		Selectors: map[string]func(*out) any{
			"Tags": func(o *out) any { return o.Tags },
		},
		Bind: func(s *binder.Set, p *resourceParams) { p.bind(s) },
		Build: func(p *resourceParams) (*in, error) {
			return &in{ResourceArn: p.ResourceArn.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.ListTagsForResource),
		Target: func(p *resourceParams) string { return p.target() },
	}
}

type addResourceTagParams struct {
	resourceParams
	Tags optional.Value[[]types.Tag]
}

func addResourceTag() cmdlet.Command {
	type (
		params = addResourceTagParams
		in     = securitylake.TagResourceInput
		out    = securitylake.TagResourceOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ResourceTag",
		Service:  service,
		Action:   action("TagResource"),
		Synopsis: "Adds or overwrites tags on a data lake or subscriber.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ResourceArn",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.resourceParams.bind(s)
			binder.JSON(s, &p.Tags, "Tag", `JSON list of {"Key","Value"}`, binder.Required())
		},
		Build: func(p *params) (*in, error) {
			req := &in{ResourceArn: p.ResourceArn.Ptr()}
			req.Tags, _ = p.Tags.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.TagResource),
		Target: func(p *params) string { return p.target() },
	}
}

type removeResourceTagParams struct {
	resourceParams
	TagKeys optional.Value[[]string]
}

func removeResourceTag() cmdlet.Command {
	type (
		params = removeResourceTagParams
		in     = securitylake.UntagResourceInput
		out    = securitylake.UntagResourceOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "ResourceTag",
		Service:  service,
		Action:   action("UntagResource"),
		Synopsis: "Removes tags from a data lake or subscriber.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "ResourceArn",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.resourceParams.bind(s)
			binder.Strings(s, &p.TagKeys, "TagKey", "keys of the tags to remove", binder.Required())
		},
		Build: func(p *params) (*in, error) {
			req := &in{ResourceArn: p.ResourceArn.Ptr()}
			req.TagKeys, _ = p.TagKeys.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.UntagResource),
		Target: func(p *params) string { return p.target() },
	}
}
