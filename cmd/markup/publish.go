package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		bucket, prefix, key string
		params              []string
		anonymous           bool
	)

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Render a description and upload it to S3",
		Long: `Render a description and upload the result to an S3 bucket.

The key defaults to the file name with .html or .xml. Region and credentials
come from the default AWS chain: AWS_* variables, ~/.aws files or an
instance role. Use --anonymous for public buckets.

Examples:
  markup publish page.yaml --bucket site
  markup publish feed.yaml --bucket site --prefix feeds/ --key atom.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pcfg := a.cfg.Publish
			if bucket != "" {
				pcfg.Bucket = bucket
			}
			if prefix != "" {
				pcfg.Prefix = prefix
			}
			if anonymous {
				pcfg.Anonymous = true
			}

			ctx, err := parseParams(params)
			if err != nil {
				return err
			}
			markup, contentType, err := renderFile(args[0], ctx, a.renderConfig())
			if err != nil {
				return err
			}

			p, err := publish.NewFromConfig(cmd.Context(), publish.Config{
				Bucket:    pcfg.Bucket,
				Prefix:    pcfg.Prefix,
				Region:    pcfg.Region,
				Endpoint:  pcfg.Endpoint,
				Anonymous: pcfg.Anonymous,
			})
			if err != nil {
				return err
			}
			if key == "" {
				key = defaultKey(args[0], contentType)
			}
			objectKey, err := p.Publish(cmd.Context(), key, markup, contentType)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Published s3://%s/%s", pcfg.Bucket, objectKey)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Bucket name (default from markup.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from markup.yaml)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default: file name with .html or .xml)")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "Send unsigned requests")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Context parameter name=value (repeatable)")

	return cmd
}

// defaultKey swaps the description extension for one matching the output.
func defaultKey(file, contentType string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if strings.HasPrefix(contentType, "application/xml") {
		return base + ".xml"
	}
	return base + ".html"
}
