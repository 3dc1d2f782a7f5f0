package slk

import (
	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/securitylake/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

type subscriberIDParams struct {
	SubscriberId optional.Value[string]
}

func (p *subscriberIDParams) bind(s *binder.Set) {
	binder.String(s, &p.SubscriberId, "SubscriberId", "ID of the subscriber", binder.Required(), binder.FromPipeline())
}

func (p *subscriberIDParams) target() string { return p.SubscriberId.Or("") }

// subscriberFields are the members shared by create and update.
type subscriberFields struct {
	SubscriberName        optional.Value[string]
	SubscriberDescription optional.Value[string]
	Identity              identityParams
	Sources               optional.Value[[]logSource]
}

func (p *subscriberFields) bind(s *binder.Set, required bool) {
	var opts []binder.Option
	if required {
		opts = append(opts, binder.Required())
	}
	binder.String(s, &p.SubscriberName, "SubscriberName", "name of the subscriber", opts...)
	binder.String(s, &p.SubscriberDescription, "SubscriberDescription", "description of the subscriber")
	p.Identity.bind(s, "SubscriberIdentity", "", opts...)
	binder.JSON(s, &p.Sources, "Source", logSourceUsage, opts...)
}

func newSubscriber() cmdlet.Command {
	type (
		params struct {
			subscriberFields
			AccessTypes optional.Value[[]types.AccessType]
			Tags        optional.Value[[]types.Tag]
		}
		in  = securitylake.CreateSubscriberInput
		out = securitylake.CreateSubscriberOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "New",
		Noun:     prefix + "Subscriber",
		Service:  service,
		Action:   action("CreateSubscriber"),
		Synopsis: "Creates a subscriber with data or query access to log sources.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "Subscriber",
		Selectors: map[string]func(*out) any{
			"Subscriber": func(o *out) any { return o.Subscriber },
		},
		Bind: func(s *binder.Set, p *params) {
			p.subscriberFields.bind(s, true)
			binder.Enums(s, &p.AccessTypes, "AccessType", "access types of the subscriber", types.AccessType("").Values())
			binder.JSON(s, &p.Tags, "Tag", `JSON list of {"Key","Value"}`)
		},
		Build: func(p *params) (*in, error) {
			sources, err := logSources(p.Sources)
			if err != nil {
				return nil, err
			}
			req := &in{
				SubscriberName:        p.SubscriberName.Ptr(),
				SubscriberDescription: p.SubscriberDescription.Ptr(),
				SubscriberIdentity:    p.Identity.build(),
				Sources:               sources,
			}
			req.AccessTypes, _ = p.AccessTypes.Get()
			req.Tags, _ = p.Tags.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateSubscriber),
		Target: func(p *params) string { return p.SubscriberName.Or("") },
	}
}

type updateSubscriberParams struct {
	subscriberIDParams
	subscriberFields
}

func updateSubscriber() cmdlet.Command {
	type (
		params = updateSubscriberParams
		in     = securitylake.UpdateSubscriberInput
		out    = securitylake.UpdateSubscriberOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Update",
		Noun:     prefix + "Subscriber",
		Service:  service,
		Action:   action("UpdateSubscriber"),
		Synopsis: "Updates the name, identity or sources of a subscriber.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "Subscriber",
		Selectors: map[string]func(*out) any{
			"Subscriber": func(o *out) any { return o.Subscriber },
		},
		Bind: func(s *binder.Set, p *params) {
			p.subscriberIDParams.bind(s)
			p.subscriberFields.bind(s, false)
		},
		Build: func(p *params) (*in, error) {
			sources, err := logSources(p.Sources)
			if err != nil {
				return nil, err
			}
			return &in{
				SubscriberId:          p.SubscriberId.Ptr(),
				SubscriberName:        p.SubscriberName.Ptr(),
				SubscriberDescription: p.SubscriberDescription.Ptr(),
				SubscriberIdentity:    p.Identity.build(),
				Sources:               sources,
			}, nil
		},
		Call:   call(aws.SecurityLakeClient.UpdateSubscriber),
		Target: func(p *params) string { return p.subscriberIDParams.target() },
	}
}

func getSubscriber() cmdlet.Command {
	type (
		in  = securitylake.GetSubscriberInput
		out = securitylake.GetSubscriberOutput
	)
	return &cmdlet.Operation[subscriberIDParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "Subscriber",
		Service:  service,
		Action:   action("GetSubscriber"),
		Synopsis: "Describes a subscriber.",
		Impact:   cmdlet.ImpactNone,
		Select:   "Subscriber",
		Selectors: map[string]func(*out) any{
			"Subscriber": func(o *out) any { return o.Subscriber },
		},
		Bind: func(s *binder.Set, p *subscriberIDParams) { p.bind(s) },
		Build: func(p *subscriberIDParams) (*in, error) {
			return &in{SubscriberId: p.SubscriberId.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.GetSubscriber),
		Target: func(p *subscriberIDParams) string { return p.target() },
	}
}

func getSubscriberList() cmdlet.Command {
	type (
		in  = securitylake.ListSubscribersInput
		out = securitylake.ListSubscribersOutput
	)
	return &cmdlet.Operation[pageParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "SubscriberList",
		Service:  service,
		Action:   action("ListSubscribers"),
		Synopsis: "Lists the subscribers of the data lake.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"Subscribers": func(o *out) any { return o.Subscribers },
			"NextToken":   func(o *out) any { return o.NextToken },
		},
		Bind: func(s *binder.Set, p *pageParams) { p.bind(s) },
		Build: func(p *pageParams) (*in, error) {
			return &in{MaxResults: p.MaxResults.Ptr(), NextToken: p.NextToken.Ptr()}, nil
		},
		Call: call(aws.SecurityLakeClient.ListSubscribers),
	}
}

func removeSubscriber() cmdlet.Command {
	type (
		in  = securitylake.DeleteSubscriberInput
		out = securitylake.DeleteSubscriberOutput
	)
	return &cmdlet.Operation[subscriberIDParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "Subscriber",
		Service:  service,
		Action:   action("DeleteSubscriber"),
		Synopsis: "Deletes a subscriber and its access.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "SubscriberId",
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *subscriberIDParams) { p.bind(s) },
		Build: func(p *subscriberIDParams) (*in, error) {
			return &in{SubscriberId: p.SubscriberId.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.DeleteSubscriber),
		Target: func(p *subscriberIDParams) string { return p.target() },
	}
}

type notificationCommandParams struct {
	subscriberIDParams
	Notification notificationParams
}

func newSubscriberNotification() cmdlet.Command {
	type (
		params = notificationCommandParams
		in     = securitylake.CreateSubscriberNotificationInput
		out    = securitylake.CreateSubscriberNotificationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "New",
		Noun:     prefix + "SubscriberNotification",
		Service:  service,
		Action:   action("CreateSubscriberNotification"),
		Synopsis: "Notifies a subscriber when new data is written to the data lake.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "SubscriberEndpoint",
		Selectors: map[string]func(*out) any{
			"SubscriberEndpoint": func(o *out) any { return o.SubscriberEndpoint },
		},
		Bind: func(s *binder.Set, p *params) {
			p.subscriberIDParams.bind(s)
			p.Notification.bind(s)
		},
		Build: func(p *params) (*in, error) {
			conf, err := p.Notification.build()
			if err != nil {
				return nil, err
			}
			return &in{SubscriberId: p.SubscriberId.Ptr(), Configuration: conf}, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateSubscriberNotification),
		Target: func(p *params) string { return p.target() },
	}
}

func updateSubscriberNotification() cmdlet.Command {
	type (
		params = notificationCommandParams
		in     = securitylake.UpdateSubscriberNotificationInput
		out    = securitylake.UpdateSubscriberNotificationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Update",
		Noun:     prefix + "SubscriberNotification",
		Service:  service,
		Action:   action("UpdateSubscriberNotification"),
		Synopsis: "Changes how a subscriber is notified of new data.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "SubscriberEndpoint",
		Selectors: map[string]func(*out) any{
			"SubscriberEndpoint": func(o *out) any { return o.SubscriberEndpoint },
		},
		Bind: func(s *binder.Set, p *params) {
			p.subscriberIDParams.bind(s)
			p.Notification.bind(s)
		},
		Build: func(p *params) (*in, error) {
			conf, err := p.Notification.build()
			if err != nil {
				return nil, err
			}
			return &in{SubscriberId: p.SubscriberId.Ptr(), Configuration: conf}, nil
		},
		Call:   call(aws.SecurityLakeClient.UpdateSubscriberNotification),
		Target: func(p *params) string { return p.target() },
	}
}

func removeSubscriberNotification() cmdlet.Command {
	type (
		in  = securitylake.DeleteSubscriberNotificationInput
		out = securitylake.DeleteSubscriberNotificationOutput
	)
	return &cmdlet.Operation[subscriberIDParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "SubscriberNotification",
		Service:  service,
		Action:   action("DeleteSubscriberNotification"),
		Synopsis: "Stops notifying a subscriber of new data.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "SubscriberId",
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *subscriberIDParams) { p.bind(s) },
		Build: func(p *subscriberIDParams) (*in, error) {
			return &in{SubscriberId: p.SubscriberId.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.DeleteSubscriberNotification),
		Target: func(p *subscriberIDParams) string { return p.target() },
	}
}
