// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheme

// builtinTable maps concept scheme names to their identifier URIs as
// published on the id.loc.gov search page. Refresh builds the current
// table from the live page; this snapshot is the default.
var builtinTable = map[string]string{
	"bibframe-instances":                        "http://id.loc.gov/resources/instances",
	"bibframe-works":                            "http://id.loc.gov/resources/works",
	"name-authority":                            "http://id.loc.gov/authorities/names",
	"lc-classification":                         "http://id.loc.gov/authorities/classification",
	"bibframe-hubs":                             "http://id.loc.gov/resources/hubs",
	"providers":                                 "http://id.loc.gov/entities/providers",
	"subject-headings":                          "http://id.loc.gov/authorities/subjects",
	"cultural-heritage-orgs":                    "http://id.loc.gov/vocabulary/organizations",
	"ethnographic-thesaurus":                    "http://id.loc.gov/vocabulary/ethnographicTerms",
	"children's-subject-headings":               "http://id.loc.gov/authorities/childrensSubjects",
	"thesaurus-graphic-materials":               "http://id.loc.gov/vocabulary/graphicMaterials",
	"genre-form-terms":                          "http://id.loc.gov/authorities/genreForms",
	"roles":                                     "http://id.loc.gov/entities/roles",
	"relationships":                             "http://id.loc.gov/entities/relationships",
	"demographic-groups":                        "http://id.loc.gov/authorities/demographicTerms",
	"rbms-controlled-vocabulary":                "http://id.loc.gov/vocabulary/rbmscv",
	"music-medium-of-performance":               "http://id.loc.gov/authorities/performanceMediums",
	"demographics-occupational":                 "http://id.loc.gov/authorities/demographicTerms/occ",
	"demographics-nationality":                  "http://id.loc.gov/authorities/demographicTerms/nat",
	"marc-geographic-areas":                     "http://id.loc.gov/vocabulary/geographicAreas",
	"iso639-2-languages":                        "http://id.loc.gov/vocabulary/iso639-2",
	"marc-languages":                            "http://id.loc.gov/vocabulary/languages",
	"subject-schemes":                           "http://id.loc.gov/vocabulary/subjectSchemes",
	"classification-schemes":                    "http://id.loc.gov/vocabulary/classSchemes",
	"marc-countries":                            "http://id.loc.gov/vocabulary/countries",
	"demographics-social":                       "http://id.loc.gov/authorities/demographicTerms/soc",
	"relators":                                  "http://id.loc.gov/vocabulary/relators",
	"demographics-cultural":                     "http://id.loc.gov/authorities/demographicTerms/eth",
	"standard-identifiers":                      "http://id.loc.gov/vocabulary/identifiers",
	"iso639-1-languages":                        "http://id.loc.gov/vocabulary/iso639-1",
	"relationship":                              "http://id.loc.gov/vocabulary/relationship",
	"demographics-language":                     "http://id.loc.gov/authorities/demographicTerms/lng",
	"genre-form-schemes":                        "http://id.loc.gov/vocabulary/genreFormSchemes",
	"iso639-5-languages":                        "http://id.loc.gov/vocabulary/iso639-5",
	"marc-genre-terms":                          "http://id.loc.gov/vocabulary/marcgt",
	"demographics-religion":                     "http://id.loc.gov/authorities/demographicTerms/rel",
	"rbms-relationship-designators":             "http://id.loc.gov/vocabulary/rbmsrel",
	"description-conventions":                   "http://id.loc.gov/vocabulary/descriptionConventions",
	"authentication-action":                     "http://id.loc.gov/vocabulary/marcauthen",
	"carriers":                                  "http://id.loc.gov/vocabulary/carriers",
	"national-bibliography-number-source-codes": "http://id.loc.gov/vocabulary/nationalbibschemes",
	"support-material":                          "http://id.loc.gov/vocabulary/mmaterial",
	"event-type":                                "http://id.loc.gov/vocabulary/preservation/eventType",
	"demographics-medical":                      "http://id.loc.gov/authorities/demographicTerms/mpd",
	"projection":                                "http://id.loc.gov/vocabulary/mprojection",
	"demographics-education":                    "http://id.loc.gov/authorities/demographicTerms/edu",
	"name-and-title-authority-source-codes":     "http://id.loc.gov/vocabulary/nameTitleSchemes",
	"resource-types-scheme":                     "http://id.loc.gov/vocabulary/resourceTypes",
	"note-type":                                 "http://id.loc.gov/vocabulary/mnotetype",
	"relationship-subtype":                      "http://id.loc.gov/vocabulary/preservation/relationshipSubType",
	"content-types":                             "http://id.loc.gov/vocabulary/contentTypes",
	"playback-characteristics":                  "http://id.loc.gov/vocabulary/mspecplayback",
	"encoding-format":                           "http://id.loc.gov/vocabulary/mencformat",
	"generation":                                "http://id.loc.gov/vocabulary/mgeneration",
	"production-method":                         "http://id.loc.gov/vocabulary/mproduction",
	"status-codes":                              "http://id.loc.gov/vocabulary/mstatus",
	"publication-frequencies":                   "http://id.loc.gov/vocabulary/frequencies",
	"layout":                                    "http://id.loc.gov/vocabulary/mlayout",
	"video-format":                              "http://id.loc.gov/vocabulary/mvidformat",
	"environment-type":                          "http://id.loc.gov/vocabulary/preservation/environmentFunctionType",
	"resource-components":                       "http://id.loc.gov/vocabulary/resourceComponents",
	"demographics-age":                          "http://id.loc.gov/authorities/demographicTerms/age",
	"book-format":                               "http://id.loc.gov/vocabulary/bookformat",
	"illustrative-content":                      "http://id.loc.gov/vocabulary/millus",
	"regional-encoding":                         "http://id.loc.gov/vocabulary/mregencoding",
	"supplementary-content":                     "http://id.loc.gov/vocabulary/msupplcont",
	"playing-speed":                             "http://id.loc.gov/vocabulary/mplayspeed",
	"notated-music-form":                        "http://id.loc.gov/vocabulary/mmusicformat",
	"cryptographic":                             "http://id.loc.gov/vocabulary/preservation/cryptographicHashFunctions",
	"media-types":                               "http://id.loc.gov/vocabulary/mediaTypes",
	"presentation-format":                       "http://id.loc.gov/vocabulary/mpresformat",
	"script":                                    "http://id.loc.gov/vocabulary/mscript",
	"serial-publication-type":                   "http://id.loc.gov/vocabulary/mserialpubtype",
	"language-code-and-term-source-codes":       "http://id.loc.gov/vocabulary/languageschemes",
	"relief":                                    "http://id.loc.gov/vocabulary/mrelief",
	"music-notation":                            "http://id.loc.gov/vocabulary/mmusnotation",
	"aspect-ratio":                              "http://id.loc.gov/vocabulary/maspect",
	"intended-audience":                         "http://id.loc.gov/vocabulary/maudience",
	"government-publication-type":               "http://id.loc.gov/vocabulary/mgovtpubtype",
	"content-location":                          "http://id.loc.gov/vocabulary/preservation/contentLocationType",
	"encoding-level":                            "http://id.loc.gov/vocabulary/menclvl",
	"tactile-notation":                          "http://id.loc.gov/vocabulary/mtactile",
	"musical-instrumentation-and-voice-code-source-codes": "http://id.loc.gov/vocabulary/musiccodeschemes",
	"color-content":              "http://id.loc.gov/vocabulary/mcolor",
	"file-type":                  "http://id.loc.gov/vocabulary/mfiletype",
	"groove-width-pitch-cutting": "http://id.loc.gov/vocabulary/mgroove",
	"scale":                      "http://id.loc.gov/vocabulary/mscale",
	"tape-configuration":         "http://id.loc.gov/vocabulary/mtapeconfig",
	"actions-granted":            "http://id.loc.gov/vocabulary/preservation/actionsGranted",
	"relationship-type":          "http://id.loc.gov/vocabulary/preservation/relationshipType",
	"code-datatypes":             "http://id.loc.gov/datatypes/codes",
	"sound-capture-and-storage":  "http://id.loc.gov/vocabulary/mcapturestorage",
	"reduction-ratio":            "http://id.loc.gov/vocabulary/mreductionratio",
	"environment-purpose":        "http://id.loc.gov/vocabulary/preservation/environmentPurpose",
	"linking-agent-role-event":   "http://id.loc.gov/vocabulary/preservation/linkingAgentRoleEvent",
	"rights-basis":               "http://id.loc.gov/vocabulary/preservation/rightsBasis",
	"extended-date-time-format-datatypes-scheme": "http://id.loc.gov/datatypes/EDTFScheme",
	"identifier-datatypes":                       "http://id.loc.gov/datatypes/identifiers",
	"issuance":                                   "http://id.loc.gov/vocabulary/issuance",
	"broadcast-standard":                         "http://id.loc.gov/vocabulary/mbroadstd",
	"playback":                                   "http://id.loc.gov/vocabulary/mplayback",
	"technique":                                  "http://id.loc.gov/vocabulary/mtechnique",
	"agent-type":                                 "http://id.loc.gov/vocabulary/preservation/agentType",
	"environment-characteristic":                 "http://id.loc.gov/vocabulary/preservation/environmentCharacteristic",
	"environment-registry":                       "http://id.loc.gov/vocabulary/preservation/environmentRegistryRole",
	"event-related-agent":                        "http://id.loc.gov/vocabulary/preservation/eventRelatedAgentRole",
	"hardware-type":                              "http://id.loc.gov/vocabulary/preservation/hardwareType",
	"inhibitor-type":                             "http://id.loc.gov/vocabulary/preservation/inhibitorType",
	"object-category":                            "http://id.loc.gov/vocabulary/preservation/objectCategory",
	"rights-related-agent":                       "http://id.loc.gov/vocabulary/preservation/rightsRelatedAgentRole",
	"software-type":                              "http://id.loc.gov/vocabulary/preservation/softwareType",
	"font-sizes":                                 "http://id.loc.gov/entities/fontsizes",
	"font-size":                                  "http://id.loc.gov/vocabulary/mfont",
	"polarity":                                   "http://id.loc.gov/vocabulary/mpolarity",
	"recording-medium":                           "http://id.loc.gov/vocabulary/mrecmedium",
	"copyright":                                  "http://id.loc.gov/vocabulary/preservation/copyrightStatus",
	"event-outcome":                              "http://id.loc.gov/vocabulary/preservation/eventOutcome",
	"inhibitor-target":                           "http://id.loc.gov/vocabulary/preservation/inhibitorTarget",
	"linking-environment":                        "http://id.loc.gov/vocabulary/preservation/linkingEnvironmentRole",
	"preservation-level":                         "http://id.loc.gov/vocabulary/preservation/preservationLevelRole",
	"storage-medium":                             "http://id.loc.gov/vocabulary/preservation/storageMedium",
	"fingerprint-scheme-source-codes":            "http://id.loc.gov/vocabulary/fingerprintschemes",
	"musical-composition-form-code-source-codes": "http://id.loc.gov/vocabulary/mcfcsc",
	"recording-type":                     "http://id.loc.gov/vocabulary/mrectype",
	"sound-content":                      "http://id.loc.gov/vocabulary/msoundcontent",
	"event-related-object":               "http://id.loc.gov/vocabulary/preservation/eventRelatedObjectRole",
	"format-registry":                    "http://id.loc.gov/vocabulary/preservation/formatRegistryRole",
	"signature-encoding":                 "http://id.loc.gov/vocabulary/preservation/signatureEncoding",
	"signature-method":                   "http://id.loc.gov/vocabulary/preservation/signatureMethod",
	"accessibility-content-source-codes": "http://id.loc.gov/vocabulary/accesscontentschemes",
}
