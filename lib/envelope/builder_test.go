package envelopehandler

import (
	"context"
	"encoding/base64"
	envelopeapimodels "esign-sender/models/api/envelope"
	esignapimodels "esign-sender/models/api/esign"
	"os"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
)

func TestMakeEnvelope(t *testing.T) {
	dir := t.TempDir()
	doc2Path := filepath.Join(dir, "contract.docx")
	doc3Path := filepath.Join(dir, "review.pdf")
	require.Nil(t, os.WriteFile(doc2Path, []byte("docx content /sn1/"), 0o600))
	require.Nil(t, os.WriteFile(doc3Path, []byte("%PDF-1.4 /sn1/"), 0o600))

	args := envelopeapimodels.EnvelopeArgs{
		SignerEmail: "signer+test@example.com",
		SignerName:  "Ann O'Neil",
		CcEmail:     "cc@example.com",
		CcName:      "Charlie Copy",
		Doc2File:    doc2Path,
		Doc3File:    doc3Path,
		Status:      esignapimodels.EnvelopeStatusSent,
	}
	source := NewDocumentSource(nil)

	t.Run(`documents check`, func(t *testing.T) {
		env, err := MakeEnvelope(context.TODO(), source, args)
		require.Nil(t, err)
		require.Len(t, env.Documents, 3)
		require.Equal(t, "1", env.Documents[0].DocumentID)
		require.Equal(t, "html", env.Documents[0].FileExtension)
		require.Equal(t, "2", env.Documents[1].DocumentID)
		require.Equal(t, "docx", env.Documents[1].FileExtension)
		require.Equal(t, "Contract document", env.Documents[1].Name)
		require.Equal(t, "3", env.Documents[2].DocumentID)
		require.Equal(t, "pdf", env.Documents[2].FileExtension)
		require.Equal(t, "Review it", env.Documents[2].Name)

		doc2, err := base64.StdEncoding.DecodeString(env.Documents[1].DocumentBase64)
		require.Nil(t, err)
		require.Equal(t, "docx content /sn1/", string(doc2))
		doc3, err := base64.StdEncoding.DecodeString(env.Documents[2].DocumentBase64)
		require.Nil(t, err)
		require.Equal(t, "%PDF-1.4 /sn1/", string(doc3))
	})

	t.Run(`document1 content check`, func(t *testing.T) {
		env, err := MakeEnvelope(context.TODO(), source, args)
		require.Nil(t, err)
		doc1, err := base64.StdEncoding.DecodeString(env.Documents[0].DocumentBase64)
		require.Nil(t, err)
		html := string(doc1)
		require.Contains(t, html, "Ordered by Ann O'Neil")
		require.Contains(t, html, "Email: signer+test@example.com")
		require.Contains(t, html, "Copy to: Charlie Copy, cc@example.com")
		require.Contains(t, html, "**signature_1**")
	})

	t.Run(`recipients check`, func(t *testing.T) {
		env, err := MakeEnvelope(context.TODO(), source, args)
		require.Nil(t, err)
		require.NotNil(t, env.Recipients)
		require.Len(t, env.Recipients.Signers, 1)
		require.Len(t, env.Recipients.CarbonCopies, 1)

		signer := env.Recipients.Signers[0]
		require.Equal(t, "1", signer.RecipientID)
		require.Equal(t, "1", signer.RoutingOrder)
		require.Equal(t, "signer+test@example.com", signer.Email)
		require.Equal(t, "Ann O'Neil", signer.Name)

		cc := env.Recipients.CarbonCopies[0]
		require.Equal(t, "2", cc.RecipientID)
		require.Equal(t, "2", cc.RoutingOrder)
		require.Equal(t, "cc@example.com", cc.Email)
		require.Equal(t, "Charlie Copy", cc.Name)

		all := env.Recipients.All()
		require.Len(t, all, 2)
		require.Equal(t, esignapimodels.RoleSigner, all[0].Role())
		require.Equal(t, esignapimodels.RoleCarbonCopy, all[1].Role())
	})

	t.Run(`tabs check`, func(t *testing.T) {
		env, err := MakeEnvelope(context.TODO(), source, args)
		require.Nil(t, err)
		tabs := env.Recipients.Signers[0].Tabs
		require.NotNil(t, tabs)
		require.Len(t, tabs.SignHereTabs, 2)
		require.Equal(t, "**signature_1**", tabs.SignHereTabs[0].AnchorString)
		require.Equal(t, "/sn1/", tabs.SignHereTabs[1].AnchorString)
		for _, tab := range tabs.SignHereTabs {
			require.Equal(t, esignapimodels.PlacementAnchor, tab.Placement())
			require.Equal(t, "pixels", tab.AnchorUnits)
			require.Equal(t, "20", tab.AnchorXOffset)
			require.Equal(t, "10", tab.AnchorYOffset)
		}
	})

	t.Run(`status and subject check`, func(t *testing.T) {
		draftArgs := args
		draftArgs.Status = esignapimodels.EnvelopeStatusCreated
		env, err := MakeEnvelope(context.TODO(), source, draftArgs)
		require.Nil(t, err)
		require.Equal(t, esignapimodels.EnvelopeStatusCreated, env.Status)
		require.Equal(t, "Request to signature on the attached document.", env.EmailSubject)
	})

	t.Run(`missing file check`, func(t *testing.T) {
		badArgs := args
		badArgs.Doc3File = filepath.Join(dir, "missing.pdf")
		env, err := MakeEnvelope(context.TODO(), source, badArgs)
		require.Nil(t, env)
		require.NotNil(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)

		badArgs = args
		badArgs.Doc2File = ""
		_, err = MakeEnvelope(context.TODO(), source, badArgs)
		require.NotNil(t, err)
	})

	t.Run(`s3 path without client check`, func(t *testing.T) {
		s3Args := args
		s3Args.Doc2File = "s3://docs/contract.docx"
		_, err := MakeEnvelope(context.TODO(), source, s3Args)
		require.NotNil(t, err)
		require.Equal(t, "S3 не настроен, файл s3://docs/contract.docx недоступен", err.Error())
	})

	t.Run(`malformed s3 path check`, func(t *testing.T) {
		s3client, err := minio.New("localhost:1", &minio.Options{
			Creds:  credentials.NewStaticV4("key", "secret", ""),
			Secure: false,
		})
		require.Nil(t, err)
		s3Source := NewDocumentSource(s3client)
		for _, path := range []string{"s3://docs", "s3://docs/", "s3:///contract.docx"} {
			s3Args := args
			s3Args.Doc2File = path
			_, err = MakeEnvelope(context.TODO(), s3Source, s3Args)
			require.NotNil(t, err)
			require.Equal(t, "некорректный путь S3: "+path, err.Error())
		}
	})
}

func TestEnvelopeValidate(t *testing.T) {
	t.Run(`duplicate document id check`, func(t *testing.T) {
		env := esignapimodels.EnvelopeDefinition{
			Documents: []esignapimodels.Document{
				{DocumentID: "1"},
				{DocumentID: "1"},
			},
		}
		require.Equal(t, "ид документа 1 повторяется", env.Validate().Error())
	})

	t.Run(`duplicate recipient id check`, func(t *testing.T) {
		env := esignapimodels.EnvelopeDefinition{
			Recipients: &esignapimodels.Recipients{
				Signers: []esignapimodels.Signer{
					{RecipientBase: esignapimodels.RecipientBase{RecipientID: "1", RoutingOrder: "1"}},
				},
				CarbonCopies: []esignapimodels.CarbonCopy{
					{RecipientBase: esignapimodels.RecipientBase{RecipientID: "1", RoutingOrder: "2"}},
				},
			},
		}
		require.Equal(t, "ид получателя 1 повторяется", env.Validate().Error())
	})

	t.Run(`routing order check`, func(t *testing.T) {
		rec := esignapimodels.Recipients{
			Signers: []esignapimodels.Signer{
				{RecipientBase: esignapimodels.RecipientBase{RecipientID: "1", RoutingOrder: "3"}},
			},
			CarbonCopies: []esignapimodels.CarbonCopy{
				{RecipientBase: esignapimodels.RecipientBase{RecipientID: "2", RoutingOrder: "1"}},
			},
		}
		all := rec.All()
		require.Equal(t, "2", all[0].GetRecipientID())
		require.Equal(t, "1", all[1].GetRecipientID())
	})
}
