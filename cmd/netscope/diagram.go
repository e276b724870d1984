package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pankaj-dahiya-devops/netscope/internal/diagram"
	"github.com/pankaj-dahiya-devops/netscope/internal/diagram/graphviz"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/globalsvc"
	awstopology "github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/topology"
	"github.com/pankaj-dahiya-devops/netscope/internal/topology"
)

type diagramOptions struct {
	profile  string
	region   string
	output   string
	services []string
	maxItems int
}

func newDiagramCmd() *cobra.Command {
	var (
		opts   diagramOptions
		format string
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render a Graphviz map of a region's VPC topology",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := loadDefaults()
			if err != nil {
				return err
			}
			if opts.profile == "" {
				opts.profile = defaults.AWS.DefaultProfile
			}
			if opts.region == "" {
				opts.region = defaults.AWS.DefaultRegion
			}
			if format == "" {
				format = defaults.Diagram.Format
			}
			if format == "" {
				format = "png"
			}
			if format != "png" && format != "svg" {
				return fmt.Errorf("unsupported diagram format %q (use png or svg)", format)
			}
			if !cmd.Flags().Changed("max-items") && defaults.Diagram.MaxItems > 0 {
				opts.maxItems = defaults.Diagram.MaxItems
			}

			return runDiagram(
				cmd.Context(),
				common.NewDefaultAWSClientProvider(),
				awstopology.NewDefaultNetworkCollector(),
				globalsvc.NewDefaultSource,
				graphviz.Renderer{Format: format},
				opts,
				cmd.OutOrStdout(),
			)
		},
	}

	cmd.Flags().StringVar(&opts.profile, "profile", "", "AWS profile name (default: uses environment / default profile)")
	cmd.Flags().StringVar(&opts.region, "region", "", "AWS region to map (default: profile home region)")
	cmd.Flags().StringVar(&opts.output, "output", "aws_network_diagram", "Output base path; the extension is added per format")
	cmd.Flags().StringSliceVar(&opts.services, "services", nil, "Global service panels to include (default: all)")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", globalsvc.DefaultMaxItems, "Max lines per global service panel")
	cmd.Flags().StringVar(&format, "format", "", `Image format: "png" or "svg" (default png)`)

	return cmd
}

// runDiagram collects one region's network topology, builds the service
// panels, and renders the diagram to opts.output. A missing Graphviz install
// is not an error: the DOT source is still written and a notice names it.
func runDiagram(
	ctx context.Context,
	provider common.AWSClientProvider,
	collector awstopology.NetworkCollector,
	newSource globalsvc.SourceFactory,
	renderer graphviz.Renderer,
	opts diagramOptions,
	w io.Writer,
) error {
	profileCfg, err := provider.LoadProfile(ctx, opts.profile)
	if err != nil {
		return fmt.Errorf("load AWS profile: %w", err)
	}

	region := opts.region
	if region == "" {
		region = profileCfg.Region
	}
	if region == "" {
		return errors.New("no region selected; pass --region or set a default region on the profile")
	}

	cfg := provider.ConfigForRegion(profileCfg, region)
	snap, err := collector.Collect(ctx, cfg, region)
	if err != nil {
		return fmt.Errorf("collect network topology in %s: %w", region, err)
	}

	builders, err := globalsvc.DefaultRegistry().Filter(opts.services)
	if err != nil {
		return err
	}
	summaries := globalsvc.BuildSummaries(ctx, newSource(cfg), opts.maxItems, builders)

	model := diagram.Build(topology.NewContext(snap), summaries)

	result, err := renderer.Render(ctx, model, opts.output)
	if errors.Is(err, graphviz.ErrRendererUnavailable) {
		fmt.Fprintf(w, "Graphviz is not installed; diagram was not rendered. DOT source written to %s\n", result.SourcePath)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Network diagram written to %s\n", result.ImagePath)
	return nil
}
